// Package config loads the settings of the lansky command line tool.
//
// Values come from, in increasing precedence: defaults, a YAML file, a .env
// file, the environment. Command line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration. It is not part of the ledger.
type Config struct {
	// Store is the directory of the ledger documents.
	Store string `yaml:"store"`
	// RedisURL, if set, stores the ledger in Redis instead of Store.
	RedisURL    string `yaml:"redis_url"`
	RedisPrefix string `yaml:"redis_prefix"`

	AdviceModel string        `yaml:"advice_model"`
	ImageModel  string        `yaml:"image_model"`
	APIKey      string        `yaml:"api_key"`
	Timeout     time.Duration `yaml:"timeout"`

	// Console enables the raw state commands.
	Console bool `yaml:"console"`
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Store:       ".lansky",
		RedisPrefix: "lansky:",
		AdviceModel: "gemini-3-pro-preview",
		ImageModel:  "gemini-2.5-flash-image",
		Timeout:     2 * time.Minute,
	}
}

// Filename is the name of the YAML file looked up in the store directory.
const Filename = "config.yaml"

// Load returns the configuration.
//
// 'path' is the YAML file to read; it must exist when set. When empty,
// "config.yaml" in the store directory is read if present. 'store', when set,
// is that directory and wins over every other source, like the -store flag it
// comes from. A ".env" file in the working directory is loaded into the
// environment when present.
func Load(path, store string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	required := path != ""
	if !required {
		dir := store
		if dir == "" {
			dir = cfg.Store
			if v, ok := os.LookupEnv("LANSKY_STORE"); ok && v != "" {
				dir = v
			}
		}
		path = filepath.Join(dir, Filename)
	}
	if err := cfg.readFile(path, required); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if store != "" {
		cfg.Store = store
	}
	return cfg, nil
}

// readFile merges the YAML file into c.
func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return nil
}

// applyEnv merges the environment variables into c.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v, ok := lookup(k); ok && v != "" {
				*dst = v
				return
			}
		}
	}
	str(&c.Store, "LANSKY_STORE")
	str(&c.RedisURL, "LANSKY_REDIS_URL")
	str(&c.RedisPrefix, "LANSKY_REDIS_PREFIX")
	str(&c.AdviceModel, "LANSKY_ADVICE_MODEL")
	str(&c.ImageModel, "LANSKY_IMAGE_MODEL")
	str(&c.APIKey, "LANSKY_API_KEY", "GEMINI_API_KEY")

	if v, ok := lookup("LANSKY_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LANSKY_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	for key, dst := range map[string]*bool{"LANSKY_CONSOLE": &c.Console, "LANSKY_VERBOSE": &c.Verbose} {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = b
		}
	}
	return nil
}
