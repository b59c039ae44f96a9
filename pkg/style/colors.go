package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

// ColorDef is an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Palette maps color names to their light and dark variants
type Palette struct {
	Colors map[string]ColorDef `yaml:"colors"`
}

// ParsePalette parses a YAML palette definition
func ParsePalette(data []byte) (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	return &p, nil
}

// Color returns the named color. Unknown names yield the zero color, which
// renders with the terminal default.
func (p *Palette) Color(name string) lipgloss.AdaptiveColor {
	def, ok := p.Colors[name]
	if !ok {
		return lipgloss.AdaptiveColor{}
	}
	return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
}

func mustLoadPalette(data []byte) *Palette {
	p, err := ParsePalette(data)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPalette is the embedded palette all styles are built from
var DefaultPalette = mustLoadPalette(paletteYAML)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	// Worktree roles
	MainColor    = DefaultPalette.Color("main")
	CurrentColor = DefaultPalette.Color("current")
	BranchColor  = DefaultPalette.Color("branch")

	// Status colors
	SuccessColor = DefaultPalette.Color("success")
	ErrorColor   = DefaultPalette.Color("error")
	WarningColor = DefaultPalette.Color("warning")

	// Text colors
	HeadingColor = DefaultPalette.Color("heading")
	MutedColor   = DefaultPalette.Color("muted")
	PathColor    = DefaultPalette.Color("path")
)
