package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game - board bounds accepted on creation; only 4x4 is enabled unless configured otherwise.
type Game struct {
	WinLength  int `yaml:"win-length" env:"GAME_WIN_LENGTH" env-default:"4"`
	MinColumns int `yaml:"min-columns" env:"GAME_MIN_COLUMNS" env-default:"4"`
	MaxColumns int `yaml:"max-columns" env:"GAME_MAX_COLUMNS" env-default:"4"`
	MinRows    int `yaml:"min-rows" env:"GAME_MIN_ROWS" env-default:"4"`
	MaxRows    int `yaml:"max-rows" env:"GAME_MAX_ROWS" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Rules().Validate(); err != nil {
		return nil, fmt.Errorf("invalid game section: %w", err)
	}

	return config, nil
}

func (that *Config) Rules() entity.Rules {
	return entity.Rules{
		WinLength:  that.Game.WinLength,
		MinColumns: that.Game.MinColumns,
		MaxColumns: that.Game.MaxColumns,
		MinRows:    that.Game.MinRows,
		MaxRows:    that.Game.MaxRows,
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
