package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/limaJavier/classpicker/pkg/model"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix = "CLASSPICKER"
)

type Config struct {
	Env      string         `mapstructure:"env"`
	Log      LogConfig      `mapstructure:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// ScheduleConfig bounds the day's periods and the combination search
type ScheduleConfig struct {
	Periods   int         `mapstructure:"periods"`
	Threshold float64     `mapstructure:"threshold"`
	Morning   ShiftConfig `mapstructure:"morning"`
	Afternoon ShiftConfig `mapstructure:"afternoon"`
	Evening   ShiftConfig `mapstructure:"evening"`
}

type ShiftConfig struct {
	Start int `mapstructure:"start"`
	End   int `mapstructure:"end"`
}

// FetchConfig configures remote dataset downloads
type FetchConfig struct {
	Retries int           `mapstructure:"retries"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads .env, the optional config file at path and CLASSPICKER_* environment variables, in increasing priority
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %v: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := model.DefaultOptions()

	v.SetDefault("env", EnvDevelopment)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("schedule.periods", defaults.Periods)
	v.SetDefault("schedule.threshold", defaults.Threshold)
	v.SetDefault("schedule.morning.start", defaults.Shifts.Morning.Start)
	v.SetDefault("schedule.morning.end", defaults.Shifts.Morning.End)
	v.SetDefault("schedule.afternoon.start", defaults.Shifts.Afternoon.Start)
	v.SetDefault("schedule.afternoon.end", defaults.Shifts.Afternoon.End)
	v.SetDefault("schedule.evening.start", defaults.Shifts.Evening.Start)
	v.SetDefault("schedule.evening.end", defaults.Shifts.Evening.End)

	v.SetDefault("fetch.retries", 3)
	v.SetDefault("fetch.timeout", "30s")
}

// Options converts the schedule section into validated search options
func (cfg *Config) Options() (model.Options, error) {
	options := model.Options{
		Periods: cfg.Schedule.Periods,
		Shifts: model.Shifts{
			Morning:   model.Shift(cfg.Schedule.Morning),
			Afternoon: model.Shift(cfg.Schedule.Afternoon),
			Evening:   model.Shift(cfg.Schedule.Evening),
		},
		Threshold: cfg.Schedule.Threshold,
	}
	if err := options.Validate(); err != nil {
		return model.Options{}, err
	}
	return options, nil
}
