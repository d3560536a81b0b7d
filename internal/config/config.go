package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Mode     string `yaml:"mode" env-default:"black"`
	Engine   Engine `yaml:"engine"`
	Cache    Cache  `yaml:"cache"`
}

type Engine struct {
	Depth         int `yaml:"depth" env-default:"3"`
	CaptureWeight int `yaml:"capture-weight" env-default:"200"`
}

type Cache struct {
	Driver     string        `yaml:"driver" env-default:"memory"`
	TTL        time.Duration `yaml:"ttl" env-default:"24h"`
	Redis      Redis         `yaml:"redis"`
	BadgerPath string        `yaml:"badger-path" env-default:"./data/moves"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Cache drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverBadger = "badger"
	DriverNone   = "none"
)

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Settings builds the rule and engine configuration. Board geometry and the
// capture limit always use the standard values.
func (that *Config) Settings() entity.Settings {
	settings := entity.DefaultSettings()

	if that.Engine.Depth > 0 {
		settings.Depth = that.Engine.Depth
	}
	if that.Engine.CaptureWeight > 0 {
		settings.CaptureWeight = that.Engine.CaptureWeight
	}

	return settings
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
