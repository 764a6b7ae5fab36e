package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim        string
	ConfigFile string
	TPS        int
	Seed       int64
	Verbose    bool
	Sets       KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "block", TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "preset to run")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file merged over the preset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = preset seed, then wall clock)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Sets, "set", "parameter override in key=value form (repeatable)")
}

// Overrides collects the flag values into the key/value form sims accept.
func (c *Config) Overrides() (map[string]string, error) {
	return BuildOverrides(c.ConfigFile, c.Seed, c.Sets)
}

// BuildOverrides merges key=value pairs with the config file and seed
// flags. Explicit flags win over pairs.
func BuildOverrides(configFile string, seed int64, pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs)+2)
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	if configFile != "" {
		out["config"] = configFile
	}
	if seed != 0 {
		out["seed"] = strconv.FormatInt(seed, 10)
	}
	return out, nil
}

// KVList is a repeatable string flag.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// NewLogger returns a text logger writing to w at info level, or debug
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
