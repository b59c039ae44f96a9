// Package config loads swt configuration. Values are layered from embedded
// defaults, the user's config file, the project's swtconfig.toml and SWT_*
// environment variables, later layers winning.
package config
