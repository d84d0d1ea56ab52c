package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flag names to config keys
var flagKeys = map[string]string{
	"tick-rate":     "tick_rate",
	"debug":         "debug",
	"seed":          "seed",
	"hold-window":   "input.hold_window",
	"audio":         "audio.enabled",
	"volume":        "audio.master_volume",
	"records":       "records.path",
	"records-keep":  "records.keep",
	"roll-cooldown": "gameplay.roll_cooldown",
	"player-speed":  "gameplay.player_speed",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\nFlags:\n%s", appName, fs.FlagUsages())
	}

	fs.StringP("config", "c", "", "config file (default ./rolldodge.yaml or <user config dir>/rolldodge/rolldodge.yaml)")
	fs.Int("tick-rate", 0, "update and render rate in Hz")
	fs.BoolP("debug", "d", false, "write debug logs to logs/rolldodge.log")
	fs.Int64("seed", 0, "spawn seed, 0 seeds from the clock")
	fs.Duration("hold-window", 0, "how long a key press counts as held")
	fs.Bool("audio", true, "enable sound effects")
	fs.Float64("volume", 0, "master volume in [0, 1]")
	fs.String("records", "", "best-score file")
	fs.Int("records-keep", 0, "number of best scores kept")
	fs.Bool("no-records", false, "do not read or write the best-score file")
	fs.Duration("roll-cooldown", 0, "roll cooldown")
	fs.Float64("player-speed", 0, "horizontal speed in world units per tick")
	return fs
}

// bindFlags binds flags to viper keys, viper only takes a flag value when it was set explicitly
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if off, _ := fs.GetBool("no-records"); off {
		v.Set("records.enabled", false)
	}
	return nil
}
