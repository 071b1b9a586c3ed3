package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sukechannnn/vsplit/split"
)

// AppConfig はアプリケーション全体の設定を保持します
type AppConfig struct {
	RepoPath string
	FilePath string
	LogLimit int

	DefaultTop float64
	MinTop     float64
	MaxTop     float64
}

// SplitOptions returns the split configuration as options.
func (c *AppConfig) SplitOptions() []split.Option {
	return []split.Option{
		split.WithDefaultTop(c.DefaultTop),
		split.WithMinTop(c.MinTop),
		split.WithMaxTop(c.MaxTop),
	}
}

// envFloat returns the float value of the environment variable key, or def if unset.
func envFloat(key string, def float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// LoadConfig はアプリケーションの設定を読み込みます
// Flags take precedence over the VSPLIT_TOP, VSPLIT_MIN and VSPLIT_MAX environment variables.
func LoadConfig(args []string, output io.Writer) (*AppConfig, error) {
	cfg := &AppConfig{}

	defaultTop, err := envFloat("VSPLIT_TOP", split.DefaultTopHeight)
	if err != nil {
		return nil, err
	}
	minTop, err := envFloat("VSPLIT_MIN", split.DefaultMinTopHeight)
	if err != nil {
		return nil, err
	}
	maxTop, err := envFloat("VSPLIT_MAX", split.DefaultMaxTopHeight)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("vsplit", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.RepoPath, "repo", ".", "path to the git repository")
	fs.StringVar(&cfg.FilePath, "file", "", "file shown in the top panel (default: changed files)")
	fs.IntVar(&cfg.LogLimit, "log-limit", 200, "number of commits shown in the bottom panel, 0 for all")
	fs.Float64Var(&cfg.DefaultTop, "top", defaultTop, "initial height of the top panel in percent")
	fs.Float64Var(&cfg.MinTop, "min", minTop, "minimum height of the top panel in percent")
	fs.Float64Var(&cfg.MaxTop, "max", maxTop, "maximum height of the top panel in percent")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"top", c.DefaultTop},
		{"min", c.MinTop},
		{"max", c.MaxTop},
	} {
		if v.value < 0 || v.value > 100 {
			return fmt.Errorf("-%s must be between 0 and 100, got %v", v.name, v.value)
		}
	}
	if c.MinTop > c.MaxTop {
		return fmt.Errorf("-min (%v) must not exceed -max (%v)", c.MinTop, c.MaxTop)
	}
	if c.LogLimit < 0 {
		return fmt.Errorf("-log-limit must not be negative, got %d", c.LogLimit)
	}
	return nil
}
