package landvalue

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid landvalue config")

const (
	PolicyFixed        = "fixed"
	PolicyProportional = "proportional"

	ClampSimple = "simple"
	ClampGated  = "gated"

	defaultPreset = "block"
)

// ScreenConfig holds the window geometry the layout is computed from.
type ScreenConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	RoadWidth   int `yaml:"road_width"`
	MenuWidth   int `yaml:"menu_width"`
	CellSpacing int `yaml:"cell_spacing"`
}

// ClampConfig selects the step clamp and its gates (percentages).
type ClampConfig struct {
	Mode       string `yaml:"mode"`
	UpChance   int    `yaml:"up_chance"`
	DownChance int    `yaml:"down_chance"`
}

// InjectConfig is the cell written by pointer seeding.
type InjectConfig struct {
	Value    int `yaml:"value"`
	Category int `yaml:"category"`
}

// SeedCell is one non-default cell of the initial pattern.
type SeedCell struct {
	Row      int `yaml:"row"`
	Col      int `yaml:"col"`
	Value    int `yaml:"value"`
	Category int `yaml:"category"`
}

// Config describes one deployment of the value-diffusion grid.
type Config struct {
	Name        string       `yaml:"name"`
	Rows        int          `yaml:"rows"`
	Cols        int          `yaml:"cols"`
	ValueLevels int          `yaml:"value_levels"`
	Categories  int          `yaml:"categories"`
	Period      int          `yaml:"period"`
	Seed        int64        `yaml:"seed"`
	Policy      string       `yaml:"policy"`
	Clamp       ClampConfig  `yaml:"clamp"`
	Inject      InjectConfig `yaml:"inject"`
	Screen      ScreenConfig `yaml:"screen"`
	// Palette is indexed by category, then value, as #RRGGBB strings.
	Palette [][]string `yaml:"palette"`
	Seeds   []SeedCell `yaml:"seeds"`
}

// Presets lists the embedded configurations.
func Presets() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Preset loads an embedded configuration by name.
func Preset(name string) (Config, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return Config{}, fmt.Errorf("unknown preset %q", name)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing preset %q: %w", name, err)
	}
	return c, nil
}

// DefaultConfig returns the block preset.
func DefaultConfig() Config {
	c, err := Preset(defaultPreset)
	if err != nil {
		panic(fmt.Sprintf("landvalue: embedded default preset: %v", err))
	}
	return c
}

// LoadConfig reads a YAML file over base. Only keys present in the file
// overwrite base; lists such as seeds and palette are replaced whole.
func LoadConfig(file string, base Config) (Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	c := base
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return c, nil
}

// WriteYAML saves the configuration to path.
func (c Config) WriteYAML(file string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// FromMap builds a config from flag-style key/value pairs. "preset" picks
// the base (default block), "config" merges a YAML file over it, and the
// remaining keys override single fields through Apply.
func FromMap(cfg map[string]string) (Config, error) {
	name := defaultPreset
	if v, ok := cfg["preset"]; ok && v != "" {
		name = v
	}
	c, err := Preset(name)
	if err != nil {
		return Config{}, err
	}
	if file, ok := cfg["config"]; ok && file != "" {
		if c, err = LoadConfig(file, c); err != nil {
			return Config{}, err
		}
	}
	fields := make(map[string]string, len(cfg))
	for k, v := range cfg {
		if k != "preset" && k != "config" {
			fields[k] = v
		}
	}
	if err := c.Apply(fields); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply overrides individual fields from key/value pairs. Unknown keys and
// malformed numbers are rejected; on error c may be partially updated.
func (c *Config) Apply(cfg map[string]string) error {
	ints := map[string]*int{
		"rows":            &c.Rows,
		"cols":            &c.Cols,
		"value_levels":    &c.ValueLevels,
		"categories":      &c.Categories,
		"period":          &c.Period,
		"up_chance":       &c.Clamp.UpChance,
		"down_chance":     &c.Clamp.DownChance,
		"inject_value":    &c.Inject.Value,
		"inject_category": &c.Inject.Category,
		"screen_width":    &c.Screen.Width,
		"screen_height":   &c.Screen.Height,
		"road_width":      &c.Screen.RoadWidth,
		"menu_width":      &c.Screen.MenuWidth,
		"cell_spacing":    &c.Screen.CellSpacing,
	}
	strs := map[string]*string{
		"policy": &c.Policy,
		"clamp":  &c.Clamp.Mode,
		"name":   &c.Name,
	}

	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		v := strings.TrimSpace(cfg[key])
		if dst, ok := ints[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
			}
			*dst = parsed
			continue
		}
		if dst, ok := strs[key]; ok {
			if v != "" {
				*dst = v
			}
			continue
		}
		if key == "seed" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: seed=%q is not an integer", ErrInvalidConfig, v)
			}
			c.Seed = parsed
			continue
		}
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
	}
	return nil
}

// Validate checks ranges and cross-field constraints.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Rows, c.Cols)
	case c.ValueLevels < 2 || c.ValueLevels > MaxLevels:
		return fmt.Errorf("%w: value_levels %d outside [2, %d]", ErrInvalidConfig, c.ValueLevels, MaxLevels)
	case c.Categories < 1 || c.Categories > MaxLevels:
		return fmt.Errorf("%w: categories %d outside [1, %d]", ErrInvalidConfig, c.Categories, MaxLevels)
	case c.Period <= 0:
		return fmt.Errorf("%w: period %d must be positive", ErrInvalidConfig, c.Period)
	case c.Policy != PolicyFixed && c.Policy != PolicyProportional:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, c.Policy)
	case c.Clamp.Mode != ClampSimple && c.Clamp.Mode != ClampGated:
		return fmt.Errorf("%w: unknown clamp %q", ErrInvalidConfig, c.Clamp.Mode)
	case c.Clamp.UpChance < 0 || c.Clamp.UpChance > 100:
		return fmt.Errorf("%w: up_chance %d outside [0, 100]", ErrInvalidConfig, c.Clamp.UpChance)
	case c.Clamp.DownChance < 0 || c.Clamp.DownChance > 100:
		return fmt.Errorf("%w: down_chance %d outside [0, 100]", ErrInvalidConfig, c.Clamp.DownChance)
	case !c.cellInRange(c.Inject.Value, c.Inject.Category):
		return fmt.Errorf("%w: inject cell (%d, %d) out of range", ErrInvalidConfig, c.Inject.Value, c.Inject.Category)
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d must be positive", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	for i, s := range c.Seeds {
		if s.Row < 0 || s.Row >= c.Rows || s.Col < 0 || s.Col >= c.Cols {
			return fmt.Errorf("%w: seed %d at (%d, %d) outside grid", ErrInvalidConfig, i, s.Row, s.Col)
		}
		if !c.cellInRange(s.Value, s.Category) {
			return fmt.Errorf("%w: seed %d cell (%d, %d) out of range", ErrInvalidConfig, i, s.Value, s.Category)
		}
	}
	if _, err := c.ColorTable(); err != nil {
		return err
	}
	return nil
}

func (c Config) cellInRange(value, category int) bool {
	return value >= 0 && value < c.ValueLevels && category >= 0 && category < c.Categories
}

// Transition builds the configured weighting policy and clamp.
func (c Config) Transition() Transition {
	var t Transition
	if c.Policy == PolicyProportional {
		t.Policy = DefaultProportionalPool()
	} else {
		t.Policy = DefaultFixedPool()
	}
	if c.Clamp.Mode == ClampGated {
		t.Clamp = GatedStep{UpChance: c.Clamp.UpChance, DownChance: c.Clamp.DownChance}
	} else {
		t.Clamp = SimpleStep{}
	}
	return t
}

// Codec returns the packing used for display buffers.
func (c Config) Codec() Codec { return Codec{WithCategory: c.Categories > 1} }
