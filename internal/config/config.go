package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API     APIConfig
	Builder BuilderConfig
	UI      UIConfig
	Log     LogConfig
}

// APIConfig locates the control server.
type APIConfig struct {
	URL  string
	Port string
	Path string
	// ConfigSubpath is appended to /ghosts/{id} for config updates. Empty
	// posts to /ghosts/{id} itself.
	ConfigSubpath string `mapstructure:"config_subpath"`
	Timeout       time.Duration
}

// BuilderConfig drives the payload toolchain.
type BuilderConfig struct {
	CMake     string
	SourceDir string `mapstructure:"source_dir"`
	BuildDir  string `mapstructure:"build_dir"`
	Config    string
	Timeout   time.Duration
}

// UIConfig holds timer and presentation settings.
type UIConfig struct {
	TickRate         time.Duration `mapstructure:"tick_rate"`
	RefreshRate      time.Duration `mapstructure:"refresh_rate"`
	LivenessTimeout  time.Duration `mapstructure:"liveness_timeout"`
	TaskRefreshTicks uint64        `mapstructure:"task_refresh_ticks"`
}

// LogConfig says where the file logger writes.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// CHARON_; the server location also honours SHADOW_URL, SHADOW_PORT and
// SHADOW_API_PATH.
func Load() (Config, error) {
	v := viper.New()
	home := os.Getenv("HOME")

	// default values
	v.SetDefault("api.url", "127.0.0.1")
	v.SetDefault("api.port", "9999")
	v.SetDefault("api.path", "/api/v1/charon")
	v.SetDefault("api.config_subpath", "")
	v.SetDefault("api.timeout", "5s")
	v.SetDefault("builder.cmake", "cmake")
	v.SetDefault("builder.source_dir", filepath.Join("..", "GHOST"))
	v.SetDefault("builder.build_dir", "")
	v.SetDefault("builder.config", "Release")
	v.SetDefault("builder.timeout", "10m")
	v.SetDefault("ui.tick_rate", "250ms")
	v.SetDefault("ui.refresh_rate", "5s")
	v.SetDefault("ui.liveness_timeout", "30s")
	v.SetDefault("ui.task_refresh_ticks", 10)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "charon", "charon.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CHARON_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "charon"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CHARON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// an empty SHADOW_PORT means "no port", not "use the default"
	v.AllowEmptyEnv(true)
	for key, env := range map[string]string{
		"api.url":  "SHADOW_URL",
		"api.port": "SHADOW_PORT",
		"api.path": "SHADOW_API_PATH",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// BaseURL assembles the API root: scheme defaults to http, an empty port is
// omitted, and a non-empty path always starts with a slash.
func (a APIConfig) BaseURL() string {
	host := strings.TrimRight(strings.TrimSpace(a.URL), "/")
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	if port := strings.TrimSpace(a.Port); port != "" {
		host += ":" + port
	}
	path := strings.TrimRight(strings.TrimSpace(a.Path), "/")
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return host + path
}

// BuildPath is the cmake binary directory, <source_dir>/build unless set.
func (b BuilderConfig) BuildPath() string {
	if b.BuildDir != "" {
		return b.BuildDir
	}
	return filepath.Join(b.SourceDir, "build")
}
