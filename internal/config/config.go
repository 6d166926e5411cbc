// Package config provides Viper-based configuration loading for the relation
// backend.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameServerConfig holds gRPC and combat timing settings.
type GameServerConfig struct {
	// GRPCHost is the bind address for the gRPC service.
	GRPCHost string `mapstructure:"grpc_host"`
	// GRPCPort is the TCP port for the gRPC service.
	GRPCPort int `mapstructure:"grpc_port"`
	// DisengageSeconds is how long after the last hostile act an actor stays
	// in combat.
	DisengageSeconds int `mapstructure:"disengage_seconds"`
	// SweepInterval is the cadence of the engagement expiry sweep.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// SwingInterval is the cadence of automatic attack swings.
	SwingInterval time.Duration `mapstructure:"swing_interval"`
	// ExtendOnBeingTargeted refreshes a defender's combat window when they
	// are selected as an attack target. Reserved; ships disabled.
	ExtendOnBeingTargeted bool `mapstructure:"extend_on_being_targeted"`
}

// Addr returns the "host:port" gRPC address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (g GameServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.GRPCHost, g.GRPCPort)
}

// DisengageWindow returns DisengageSeconds as a duration.
func (g GameServerConfig) DisengageWindow() time.Duration {
	return time.Duration(g.DisengageSeconds) * time.Second
}

// Valid values for ContentConfig.Source.
const (
	ContentSourceFiles    = "files"
	ContentSourceDatabase = "database"
)

// ContentConfig holds authored-content loading settings.
type ContentConfig struct {
	// Source selects where content is loaded from: "files" or "database".
	Source string `mapstructure:"source"`
	// FactionsDir holds faction definition YAML files.
	FactionsDir string `mapstructure:"factions_dir"`
	// RegionsDir holds region rule YAML files.
	RegionsDir string `mapstructure:"regions_dir"`
	// ConditionsDir holds condition definition YAML files.
	ConditionsDir string `mapstructure:"conditions_dir"`
	// ScriptsDir holds shared region hook Lua scripts.
	ScriptsDir string `mapstructure:"scripts_dir"`
	// ScriptInstructionLimit caps Lua opcodes per hook call. 0 = default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// ClockConfig holds game clock settings.
type ClockConfig struct {
	// StartHour is the game hour at boot, in [0, 23].
	StartHour int32 `mapstructure:"start_hour"`
	// TickInterval is the real-time duration of one game hour.
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// Config is the top-level application configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	GameServer GameServerConfig `mapstructure:"gameserver"`
	Content    ContentConfig    `mapstructure:"content"`
	Clock      ClockConfig      `mapstructure:"clock"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateDatabase(c.Database); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGameServer(c.GameServer); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateClock(c.Clock); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGameServer(g GameServerConfig) error {
	var errs []string
	if g.GRPCHost == "" {
		errs = append(errs, "gameserver.grpc_host must not be empty")
	}
	if g.GRPCPort < 1 || g.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("gameserver.grpc_port must be 1-65535, got %d", g.GRPCPort))
	}
	if g.DisengageSeconds < 1 {
		errs = append(errs, fmt.Sprintf("gameserver.disengage_seconds must be >= 1, got %d", g.DisengageSeconds))
	}
	if g.SweepInterval <= 0 {
		errs = append(errs, "gameserver.sweep_interval must be positive")
	}
	if g.SwingInterval <= 0 {
		errs = append(errs, "gameserver.swing_interval must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	validSources := map[string]bool{ContentSourceFiles: true, ContentSourceDatabase: true}
	if !validSources[c.Source] {
		errs = append(errs, fmt.Sprintf("content.source must be one of [files, database], got %q", c.Source))
	}
	if c.Source == ContentSourceFiles {
		if c.FactionsDir == "" {
			errs = append(errs, "content.factions_dir must not be empty when content.source is files")
		}
		if c.RegionsDir == "" {
			errs = append(errs, "content.regions_dir must not be empty when content.source is files")
		}
	}
	if c.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("content.script_instruction_limit must be >= 0, got %d", c.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateClock(c ClockConfig) error {
	var errs []string
	if c.StartHour < 0 || c.StartHour > 23 {
		errs = append(errs, fmt.Sprintf("clock.start_hour must be 0-23, got %d", c.StartHour))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, "clock.tick_interval must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with FEUD_ prefix
	v.SetEnvPrefix("FEUD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "feud")
	v.SetDefault("database.password", "feud")
	v.SetDefault("database.name", "feud")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("gameserver.grpc_host", "127.0.0.1")
	v.SetDefault("gameserver.grpc_port", 50051)
	v.SetDefault("gameserver.disengage_seconds", 10)
	v.SetDefault("gameserver.sweep_interval", "1s")
	v.SetDefault("gameserver.swing_interval", "2s")
	v.SetDefault("gameserver.extend_on_being_targeted", false)

	v.SetDefault("content.source", "files")
	v.SetDefault("content.factions_dir", "content/factions")
	v.SetDefault("content.regions_dir", "content/regions")
	v.SetDefault("content.conditions_dir", "content/conditions")
	v.SetDefault("content.scripts_dir", "content/scripts")
	v.SetDefault("content.script_instruction_limit", 0)

	v.SetDefault("clock.start_hour", 8)
	v.SetDefault("clock.tick_interval", "2m")
}
