package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/swt/pkg/errors"
	"github.com/arthur-debert/swt/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// FileName is the project configuration file, looked up in the repository root
	FileName = "swtconfig.toml"

	// UserFileName is the per-user configuration file in the home directory
	UserFileName = ".swtconfig.toml"

	envPrefix = "SWT_"

	OracleGit     = "git"
	OracleBuiltin = "builtin"
)

// Config holds the settings read by the worktree workflows and the sync engine
type Config struct {
	DefaultWorktreeDir string   `koanf:"defaultWorktreeDir" toml:"defaultWorktreeDir"`
	AddToGitignore     bool     `koanf:"addToGitignore" toml:"addToGitignore"`
	IgnoreOracle       string   `koanf:"ignoreOracle" toml:"ignoreOracle"`
	FilesToSync        []string `koanf:"filesToSync" toml:"filesToSync"`
	FilesToCopy        []string `koanf:"filesToCopy" toml:"filesToCopy"`

	// Sources lists the files that contributed to this configuration
	Sources []string `koanf:"-" toml:"-"`
}

// envKeys maps environment variables onto configuration keys
var envKeys = map[string]string{
	"SWT_DEFAULT_WORKTREE_DIR": "defaultWorktreeDir",
	"SWT_ADD_TO_GITIGNORE":     "addToGitignore",
	"SWT_IGNORE_ORACLE":        "ignoreOracle",
	"SWT_FILES_TO_SYNC":        "filesToSync",
	"SWT_FILES_TO_COPY":        "filesToCopy",
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DefaultWorktreeDir: "../",
		AddToGitignore:     true,
		IgnoreOracle:       OracleGit,
		FilesToSync:        []string{},
		FilesToCopy:        []string{},
	}
}

// Overrides are key/value settings that win over every other layer, such as
// values given on the command line. Keys are the configuration file keys.
type Overrides map[string]interface{}

// Load reads the layered configuration for the project rooted at projectDir.
// An empty projectDir skips the project layer.
func Load(projectDir string) (*Config, error) {
	return LoadWithOverrides(projectDir, nil)
}

// LoadWithOverrides is Load with a final layer of overrides
func LoadWithOverrides(projectDir string, overrides Overrides) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	var sources []string

	// 2. User file, then 3. project file
	paths := []string{UserConfigPath()}
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, FileName))
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
		sources = append(sources, path)
	}

	// 4. Environment
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return envKeys[key], value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Sources = sources

	return &cfg, nil
}

// LoadOrDefault is Load that never fails: a broken configuration is logged as
// a warning and the built-in defaults are returned instead.
func LoadOrDefault(projectDir string, overrides Overrides) *Config {
	cfg, err := LoadWithOverrides(projectDir, overrides)
	if err != nil {
		logger := logging.GetLogger("config")
		logger.Warn().Err(err).Msg("Using default configuration")
		return Default()
	}
	return cfg
}

// ValidateOracle checks an ignoreOracle value
func ValidateOracle(name string) error {
	switch name {
	case OracleGit, OracleBuiltin:
		return nil
	default:
		return errors.Newf(errors.ErrConfigParse,
			"ignoreOracle must be %q or %q, got %q", OracleGit, OracleBuiltin, name)
	}
}

func (c *Config) validate() error {
	if c.IgnoreOracle == "" {
		c.IgnoreOracle = OracleGit
	}
	if err := ValidateOracle(c.IgnoreOracle); err != nil {
		return err
	}
	if strings.TrimSpace(c.DefaultWorktreeDir) == "" {
		c.DefaultWorktreeDir = "../"
	}
	return nil
}

// UserConfigPath returns the per-user configuration file. ~/.swtconfig.toml
// wins when it exists; otherwise the XDG location is used.
func UserConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, UserFileName)
		if _, err := os.Stat(legacy); err == nil {
			return legacy
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	if configHome == "" {
		return ""
	}
	return filepath.Join(configHome, "swt", "config.toml")
}

// Describe returns a one-line summary used in debug output
func (c *Config) Describe() string {
	return fmt.Sprintf("dir=%s gitignore=%t oracle=%s link=%d copy=%d",
		c.DefaultWorktreeDir, c.AddToGitignore, c.IgnoreOracle,
		len(ParsePatterns(c.FilesToSync)), len(ParsePatterns(c.FilesToCopy)))
}
