package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Taskwarrior integration
	Taskwarrior TaskwarriorConfig

	// Analysis tuning
	Suggest SuggestConfig
	Triage  TriageConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskwarriorConfig configures how the external `task` binary is invoked.
type TaskwarriorConfig struct {
	Bin             string        // binary name or absolute path
	Taskrc          string        // TASKRC override, empty keeps the environment's
	Taskdata        string        // TASKDATA override, empty keeps the environment's
	Timezone        string        // IANA timezone for due-date day boundaries
	Timeout         time.Duration // per-invocation deadline
	RateLimitPerMin int           // subprocess invocation budget
	CacheTTL        time.Duration // export cache entry lifetime
	CacheSize       int           // max cached export results
}

// SuggestConfig holds the suggestion scoring weights. The relative ordering
// (overdue > due today > due this week, high > medium > low) is a hard
// contract; the magnitudes are tunable.
type SuggestConfig struct {
	PriorityHigh   float64
	PriorityMedium float64
	PriorityLow    float64
	Overdue        float64
	DueToday       float64
	DueThisWeek    float64
	AgePerWeek     float64
	AgeCap         float64
	Active         float64
	NextTag        float64
	QuickTag       float64
	PerBlocked     float64
}

type TriageConfig struct {
	StaleDays int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/taskwarrior-mcp/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/taskwarrior-mcp/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Taskwarrior.Bin = viper.GetString("taskwarrior.bin")
	cfg.Taskwarrior.Taskrc = viper.GetString("taskwarrior.taskrc")
	cfg.Taskwarrior.Taskdata = viper.GetString("taskwarrior.taskdata")
	cfg.Taskwarrior.Timezone = viper.GetString("taskwarrior.timezone")
	cfg.Taskwarrior.Timeout = viper.GetDuration("taskwarrior.timeout")
	cfg.Taskwarrior.RateLimitPerMin = viper.GetInt("taskwarrior.rate_limit_per_min")
	cfg.Taskwarrior.CacheTTL = viper.GetDuration("taskwarrior.cache_ttl")
	cfg.Taskwarrior.CacheSize = viper.GetInt("taskwarrior.cache_size")

	// Plain TASKRC / TASKDATA env vars win over config file values so the
	// server honors the same environment Taskwarrior itself would see.
	if taskrc := viper.GetString("taskrc"); taskrc != "" {
		cfg.Taskwarrior.Taskrc = taskrc
	}
	if taskdata := viper.GetString("taskdata"); taskdata != "" {
		cfg.Taskwarrior.Taskdata = taskdata
	}

	cfg.Suggest.PriorityHigh = viper.GetFloat64("suggest.priority_high")
	cfg.Suggest.PriorityMedium = viper.GetFloat64("suggest.priority_medium")
	cfg.Suggest.PriorityLow = viper.GetFloat64("suggest.priority_low")
	cfg.Suggest.Overdue = viper.GetFloat64("suggest.overdue")
	cfg.Suggest.DueToday = viper.GetFloat64("suggest.due_today")
	cfg.Suggest.DueThisWeek = viper.GetFloat64("suggest.due_this_week")
	cfg.Suggest.AgePerWeek = viper.GetFloat64("suggest.age_per_week")
	cfg.Suggest.AgeCap = viper.GetFloat64("suggest.age_cap")
	cfg.Suggest.Active = viper.GetFloat64("suggest.active")
	cfg.Suggest.NextTag = viper.GetFloat64("suggest.next_tag")
	cfg.Suggest.QuickTag = viper.GetFloat64("suggest.quick_tag")
	cfg.Suggest.PerBlocked = viper.GetFloat64("suggest.per_blocked")

	cfg.Triage.StaleDays = viper.GetInt("triage.stale_days")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("taskwarrior.bin", "task")
	viper.SetDefault("taskwarrior.timeout", 30*time.Second)
	viper.SetDefault("taskwarrior.rate_limit_per_min", 120)
	viper.SetDefault("taskwarrior.cache_ttl", 3*time.Second)
	viper.SetDefault("taskwarrior.cache_size", 32)

	// Scoring defaults. Magnitudes are heuristic; only the relative
	// ordering between the due-proximity weights and between the priority
	// weights is load-bearing.
	viper.SetDefault("suggest.priority_high", 30.0)
	viper.SetDefault("suggest.priority_medium", 15.0)
	viper.SetDefault("suggest.priority_low", 5.0)
	viper.SetDefault("suggest.overdue", 100.0)
	viper.SetDefault("suggest.due_today", 60.0)
	viper.SetDefault("suggest.due_this_week", 30.0)
	viper.SetDefault("suggest.age_per_week", 1.0)
	viper.SetDefault("suggest.age_cap", 10.0)
	viper.SetDefault("suggest.active", 15.0)
	viper.SetDefault("suggest.next_tag", 25.0)
	viper.SetDefault("suggest.quick_tag", 10.0)
	viper.SetDefault("suggest.per_blocked", 20.0)

	viper.SetDefault("triage.stale_days", 14)
}

func validate(cfg *Config) error {
	if cfg.Taskwarrior.Bin == "" {
		return fmt.Errorf("taskwarrior.bin must not be empty")
	}
	if cfg.Taskwarrior.Timeout <= 0 {
		return fmt.Errorf("taskwarrior.timeout must be positive, got %s", cfg.Taskwarrior.Timeout)
	}
	if cfg.Taskwarrior.RateLimitPerMin <= 0 {
		return fmt.Errorf("taskwarrior.rate_limit_per_min must be positive, got %d", cfg.Taskwarrior.RateLimitPerMin)
	}
	if cfg.Triage.StaleDays <= 0 {
		return fmt.Errorf("triage.stale_days must be positive, got %d", cfg.Triage.StaleDays)
	}
	if cfg.Suggest.Overdue <= cfg.Suggest.DueToday {
		return fmt.Errorf("suggest.overdue (%v) must exceed suggest.due_today (%v)", cfg.Suggest.Overdue, cfg.Suggest.DueToday)
	}
	if cfg.Suggest.DueToday <= cfg.Suggest.DueThisWeek {
		return fmt.Errorf("suggest.due_today (%v) must exceed suggest.due_this_week (%v)", cfg.Suggest.DueToday, cfg.Suggest.DueThisWeek)
	}
	return nil
}
