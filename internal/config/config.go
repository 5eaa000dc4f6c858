package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/CristiGvl/picoSysMon/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix         = "PICOSYSMON"
	DefaultConfigName = "picosysmon"
	DefaultConfigDir  = "/etc"

	DefaultBind        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultInterval    = time.Second
	DefaultSysfsRoot   = "/sys"
	DefaultRootFS      = "/"
	DefaultStoragePath = "/"
	DefaultLogLevel    = "info"
)

// Config holds the runtime configuration
type Config struct {
	Bind        string        `mapstructure:"bind"`
	Port        int           `mapstructure:"port"`
	Interval    time.Duration `mapstructure:"interval"`
	SysfsRoot   string        `mapstructure:"sysfs_root"`
	RootFS      string        `mapstructure:"root_fs"`
	StoragePath string        `mapstructure:"storage_path"`
	LogLevel    string        `mapstructure:"log_level"`
	Once        bool          `mapstructure:"once"`
	Metrics     bool          `mapstructure:"metrics"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"bind":         "bind",
	"port":         "port",
	"interval":     "interval",
	"sysfs-root":   "sysfs_root",
	"root-fs":      "root_fs",
	"storage-path": "storage_path",
	"log-level":    "log_level",
	"once":         "once",
	"metrics":      "metrics",
}

// Load reads configuration from flags, environment and an optional TOML file.
// Flags win over environment, environment over file, file over defaults.
func Load(args []string) (*Config, error) {
	errFactory := errors.New()

	fs := pflag.NewFlagSet("picosysmon", pflag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a TOML configuration file")
	fs.String("bind", DefaultBind, "IP address to bind the server to")
	fs.Int("port", DefaultPort, "Port to run the server on")
	fs.Duration("interval", DefaultInterval, "Interval between hardware samples")
	fs.String("sysfs-root", DefaultSysfsRoot, "Mount point of sysfs")
	fs.String("root-fs", DefaultRootFS, "Root of the filesystem used for procfs and su probes")
	fs.String("storage-path", DefaultStoragePath, "Path whose filesystem is reported as storage")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.Bool("once", false, "Print the hardware screen once and exit")
	fs.Bool("metrics", true, "Expose Prometheus metrics on /metrics")

	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v := viper.New()
	v.SetDefault("bind", DefaultBind)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("sysfs_root", DefaultSysfsRoot)
	v.SetDefault("root_fs", DefaultRootFS)
	v.SetDefault("storage_path", DefaultStoragePath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("once", false)
	v.SetDefault("metrics", true)

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := readConfigFile(v, *configPath); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		path = v.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.New().Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("toml")
	v.AddConfigPath(DefaultConfigDir)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.New().Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

// Validate checks the configuration for values the monitor cannot run with
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "port out of range").WithData(c.Port)
	}
	if strings.TrimSpace(c.SysfsRoot) == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "sysfs_root must not be empty")
	}
	if strings.TrimSpace(c.RootFS) == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "root_fs must not be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// Address returns the listen address in host:port form
func (c *Config) Address() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}
