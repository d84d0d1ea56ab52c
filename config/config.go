// Package config merges defaults, an optional YAML file, .env, environment and flags
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/rolldodge/audio"
	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/records"
)

const (
	appName   = "rolldodge"
	envPrefix = "ROLLDODGE"
	envFile   = ".env"
)

// ErrInvalid is returned when a merged value fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the merged runtime configuration
type Config struct {
	TickRate int   `mapstructure:"tick_rate"`
	Debug    bool  `mapstructure:"debug"`
	Seed     int64 `mapstructure:"seed"`

	Input    InputConfig    `mapstructure:"input"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Records  RecordsConfig  `mapstructure:"records"`
	Gameplay GameplayConfig `mapstructure:"gameplay"`

	// File is the config file that was read, empty when none
	File string `mapstructure:"-"`
}

// InputConfig controls held-key emulation and key overrides
type InputConfig struct {
	HoldWindow time.Duration     `mapstructure:"hold_window"`
	// Keys maps key names to action names, merged over the default table
	Keys       map[string]string `mapstructure:"keys"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled      bool               `mapstructure:"enabled"`
	MasterVolume float64            `mapstructure:"master_volume"`
	Volumes      map[string]float64 `mapstructure:"volumes"`
}

// RecordsConfig controls the best-score table
type RecordsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Keep    int    `mapstructure:"keep"`
}

// GameplayConfig exposes the tunable gameplay values
type GameplayConfig struct {
	PlayerSpeed   float64       `mapstructure:"player_speed"`
	RollDuration  time.Duration `mapstructure:"roll_duration"`
	RollCooldown  time.Duration `mapstructure:"roll_cooldown"`
	Invincibility time.Duration `mapstructure:"invincibility"`
}

// Load parses args and merges every configuration source
// Precedence: flags > environment (.env included) > config file > defaults
func Load(args []string) (*Config, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Variables already set in the environment win over .env
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, flags); err != nil {
		return nil, err
	}
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with no file, environment or flags applied
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults are plain values, decoding them can't fail
	_ = v.Unmarshal(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	t := engine.DefaultTuning()
	a := audio.DefaultAudioConfig()

	v.SetDefault("tick_rate", constants.DefaultTickRate)
	v.SetDefault("debug", false)
	v.SetDefault("seed", 0)

	v.SetDefault("input.hold_window", constants.DefaultHoldWindow)
	v.SetDefault("input.keys", map[string]string{})

	v.SetDefault("audio.enabled", a.Enabled)
	v.SetDefault("audio.master_volume", a.MasterVolume)
	v.SetDefault("audio.volumes", map[string]float64{})

	v.SetDefault("records.enabled", true)
	v.SetDefault("records.path", defaultRecordsPath())
	v.SetDefault("records.keep", records.DefaultKeep)

	v.SetDefault("gameplay.player_speed", t.PlayerSpeed)
	v.SetDefault("gameplay.roll_duration", t.RollDuration)
	v.SetDefault("gameplay.roll_cooldown", t.RollCooldown)
	v.SetDefault("gameplay.invincibility", t.Invincibility)
}

func defaultRecordsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "records.yaml"
	}
	return filepath.Join(dir, appName, "records.yaml")
}

// readConfigFile reads --config when given, otherwise rolldodge.yaml from cwd or the user config dir
// A missing default file is not an error, a missing explicit file is
func readConfigFile(v *viper.Viper, flags *pflag.FlagSet) error {
	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	switch {
	case c.TickRate < constants.MinTickRate || c.TickRate > constants.MaxTickRate:
		return fmt.Errorf("%w: tick_rate %d outside [%d, %d]", ErrInvalid, c.TickRate, constants.MinTickRate, constants.MaxTickRate)
	case c.Input.HoldWindow < constants.MinHoldWindow || c.Input.HoldWindow > constants.MaxHoldWindow:
		return fmt.Errorf("%w: input.hold_window %v outside [%v, %v]", ErrInvalid, c.Input.HoldWindow, constants.MinHoldWindow, constants.MaxHoldWindow)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume %v outside [0, 1]", ErrInvalid, c.Audio.MasterVolume)
	case c.Records.Keep < 1:
		return fmt.Errorf("%w: records.keep must be positive, got %d", ErrInvalid, c.Records.Keep)
	case c.Records.Enabled && c.Records.Path == "":
		return fmt.Errorf("%w: records.path is empty", ErrInvalid)
	case c.Gameplay.PlayerSpeed <= 0:
		return fmt.Errorf("%w: gameplay.player_speed must be positive", ErrInvalid)
	case c.Gameplay.RollDuration <= 0 || c.Gameplay.RollCooldown <= 0 || c.Gameplay.Invincibility <= 0:
		return fmt.Errorf("%w: gameplay durations must be positive", ErrInvalid)
	case c.Gameplay.RollCooldown < c.Gameplay.RollDuration:
		return fmt.Errorf("%w: gameplay.roll_cooldown %v shorter than roll_duration %v", ErrInvalid, c.Gameplay.RollCooldown, c.Gameplay.RollDuration)
	}

	for name, vol := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: audio.volumes has unknown sound %q", ErrInvalid, name)
		}
		if vol < 0 || vol > 1 {
			return fmt.Errorf("%w: audio.volumes.%s %v outside [0, 1]", ErrInvalid, name, vol)
		}
	}
	return nil
}

// TickInterval returns the update/render period
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Tuning maps gameplay settings onto the engine
func (c *Config) Tuning() engine.Tuning {
	return engine.Tuning{
		PlayerSpeed:   c.Gameplay.PlayerSpeed,
		RollDuration:  c.Gameplay.RollDuration,
		RollCooldown:  c.Gameplay.RollCooldown,
		Invincibility: c.Gameplay.Invincibility,
	}
}

// AudioSettings maps audio settings onto the sound manager config
func (c *Config) AudioSettings() (*audio.AudioConfig, error) {
	a := audio.DefaultAudioConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.MasterVolume
	if err := a.SetVolumes(c.Audio.Volumes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return a, nil
}
