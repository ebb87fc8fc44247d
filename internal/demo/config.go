package demo

import (
	"fmt"
	"os"

	"github.com/aatomu/fraction"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the operands printed by Run. Each pair is [numerator, denominator].
type Config struct {
	LogLevel string  `toml:"log_level"`
	Left     []int64 `toml:"left"`
	Right    []int64 `toml:"right"`
	Mixed    []int64 `toml:"mixed"`
	Compare  []int64 `toml:"compare"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Left:     []int64{1, 2},
		Right:    []int64{3, 4},
		Mixed:    []int64{7, 3},
		Compare:  []int64{2, 4},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	var fileConfig Config
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	if fileConfig.LogLevel != "" {
		c.LogLevel = fileConfig.LogLevel
	}
	if fileConfig.Left != nil {
		c.Left = fileConfig.Left
	}
	if fileConfig.Right != nil {
		c.Right = fileConfig.Right
	}
	if fileConfig.Mixed != nil {
		c.Mixed = fileConfig.Mixed
	}
	if fileConfig.Compare != nil {
		c.Compare = fileConfig.Compare
	}

	return c, nil
}

type operands struct {
	left, right, mixed, compare fraction.Frac
}

func (c Config) operands() (operands, error) {
	var ops operands
	for _, p := range []struct {
		name string
		pair []int64
		dst  *fraction.Frac
	}{
		{"left", c.Left, &ops.left},
		{"right", c.Right, &ops.right},
		{"mixed", c.Mixed, &ops.mixed},
		{"compare", c.Compare, &ops.compare},
	} {
		if len(p.pair) != 2 {
			return ops, fmt.Errorf("%s: want [numerator, denominator], got %v", p.name, p.pair)
		}
		f, err := fraction.New(p.pair[0], p.pair[1])
		if err != nil {
			return ops, fmt.Errorf("%s: %w", p.name, err)
		}
		*p.dst = f
	}
	return ops, nil
}
