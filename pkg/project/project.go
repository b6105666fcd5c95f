// Package project loads per-project configuration from a tankdesign.toml
// file. Every field is optional; missing values fall back to Default(),
// and explicit CLI flags always win over file values.
package project

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/pipeline"
)

// ConfigFile is the file name searched for in the working directory.
const ConfigFile = "tankdesign.toml"

// Config holds project-level settings.
type Config struct {
	Tank   TankConfig   `toml:"tank"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// TankConfig sets the design inputs.
type TankConfig struct {
	CapacityLiters float64 `toml:"capacity_liters"`
	Title          string  `toml:"title"`
}

// OutputConfig sets where generated files land and which formats to emit.
type OutputConfig struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
}

// ServerConfig sets the documentation server listen address.
type ServerConfig struct {
	Addr string `toml:"addr"`
	Port int    `toml:"port"`
}

// CacheConfig selects the cache backend. An empty RedisAddr means the
// file cache under Dir (or the default cache directory when Dir is empty).
type CacheConfig struct {
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	Disabled  bool   `toml:"disabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Tank:   TankConfig{CapacityLiters: pipeline.DefaultCapacityLiters, Title: "9000L Above-Ground Petroleum Storage Tank"},
		Output: OutputConfig{Dir: "output", Formats: []string{pipeline.FormatMarkdown, pipeline.FormatSTEP}},
		Server: ServerConfig{Addr: "127.0.0.1", Port: 8080},
	}
}

// Load reads a config file and merges it over the defaults. A missing
// file is not an error; Load then returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	cfg.merge(&file)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads the config file from dir, falling back to defaults.
func Discover(dir string) (*Config, error) {
	return Load(filepath.Join(dir, ConfigFile))
}

func (c *Config) merge(file *Config) {
	if file.Tank.CapacityLiters != 0 {
		c.Tank.CapacityLiters = file.Tank.CapacityLiters
	}
	if file.Tank.Title != "" {
		c.Tank.Title = file.Tank.Title
	}
	if file.Output.Dir != "" {
		c.Output.Dir = file.Output.Dir
	}
	if len(file.Output.Formats) > 0 {
		c.Output.Formats = file.Output.Formats
	}
	if file.Server.Addr != "" {
		c.Server.Addr = file.Server.Addr
	}
	if file.Server.Port != 0 {
		c.Server.Port = file.Server.Port
	}
	if file.Cache.Dir != "" {
		c.Cache.Dir = file.Cache.Dir
	}
	if file.Cache.RedisAddr != "" {
		c.Cache.RedisAddr = file.Cache.RedisAddr
	}
	if file.Cache.Disabled {
		c.Cache.Disabled = true
	}
}

func (c *Config) validate() error {
	if c.Tank.CapacityLiters < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tank.capacity_liters must be positive, got %.0f", c.Tank.CapacityLiters)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.port out of range: %d", c.Server.Port)
	}
	for _, f := range c.Output.Formats {
		if err := pipeline.ValidateFormat(f); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.formats")
		}
	}
	return nil
}
