package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBinary  = "ecc-api"
	DefaultBackend = "notify-send"
)

var (
	ErrConfigMissing       = errors.New("config file not found")
	ErrConfigInvalidSyntax = errors.New("config file is not valid")
	ErrConfigMissingFields = errors.New("config file is missing required fields")
)

// Network holds the device endpoint. Pointers distinguish a missing key from a zero value.
type Network struct {
	IP   *string `toml:"ip" yaml:"ip"`
	Port *int    `toml:"port" yaml:"port"`
}

type Control struct {
	Binary    string `toml:"binary" yaml:"binary"`
	TimeoutMs int    `toml:"timeout_ms" yaml:"timeout_ms"`
}

type Notify struct {
	Backend string `toml:"backend" yaml:"backend"`
}

type Config struct {
	Network Network `toml:"network" yaml:"network"`
	Control Control `toml:"control" yaml:"control"`
	Notify  Notify  `toml:"notify" yaml:"notify"`

	filePath string `toml:"-" yaml:"-"`
}

// DefaultPath returns ~/.config/elgatocontrolcenter/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "elgatocontrolcenter", "config.toml")
}

// Load reads the config at path, or at DefaultPath when path is empty.
// The default directory is created when missing so the user knows where to put the file.
func Load(path string, log logrus.FieldLogger) (*Config, error) {
	if path == "" {
		path = DefaultPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.WithError(err).Warn("could not create config directory")
		}
	}
	log.Debugf("Reading config from %s", path)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMissing, path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) {
				return nil, fmt.Errorf("%w: %s: %v", ErrConfigMissingFields, path, err)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalidSyntax, path, err)
		}
	default:
		md, err := toml.NewDecoder(bytes.NewReader(b)).Decode(&cfg)
		if err != nil {
			// A well-formed file whose keys have the wrong type decodes
			// without a ParseError; treat those keys as missing.
			var perr toml.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %s: %v", ErrConfigMissingFields, path, err)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalidSyntax, path, err)
		}
		for _, k := range md.Undecoded() {
			log.Debugf("ignoring unknown config key %q", k.String())
		}
	}

	var missing []string
	if cfg.Network.IP == nil {
		missing = append(missing, "network.ip")
	}
	if cfg.Network.Port == nil {
		missing = append(missing, "network.port")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissingFields, strings.Join(missing, ", "))
	}

	if cfg.Control.Binary == "" {
		cfg.Control.Binary = DefaultBinary
	}
	if cfg.Control.TimeoutMs < 0 {
		cfg.Control.TimeoutMs = 0
	}
	if cfg.Notify.Backend == "" {
		cfg.Notify.Backend = DefaultBackend
	}
	cfg.filePath = path
	return &cfg, nil
}

func (c *Config) IP() string   { return *c.Network.IP }
func (c *Config) Port() int    { return *c.Network.Port }
func (c *Config) Path() string { return c.filePath }

// Timeout is the per-command deadline for the control binary. Zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Control.TimeoutMs) * time.Millisecond
}

// UserMessage maps a Load error to the text shown in the fatal notification.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConfigMissing):
		return "Config file not found"
	case errors.Is(err, ErrConfigInvalidSyntax):
		return "Config file is not a valid TOML file"
	case errors.Is(err, ErrConfigMissingFields):
		return "Config file is missing required fields"
	default:
		return err.Error()
	}
}
