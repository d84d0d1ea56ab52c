package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/rolldodge/audio"
	"github.com/lixenwraith/rolldodge/config"
	"github.com/lixenwraith/rolldodge/core"
	"github.com/lixenwraith/rolldodge/engine"
	"github.com/lixenwraith/rolldodge/input"
	"github.com/lixenwraith/rolldodge/records"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "rolldodge: %v\n", err)
		return 2
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if cfg.File != "" {
		logger.Info().Str("file", cfg.File).Msg("config loaded")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit with error")
		fmt.Fprintf(os.Stderr, "rolldodge: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config, log zerolog.Logger) error {
	keys := input.DefaultKeyTable()
	if len(cfg.Input.Keys) > 0 {
		override, err := input.LoadKeyBindings(cfg.Input.Keys)
		if err != nil {
			return fmt.Errorf("key bindings: %w", err)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	audioCfg, err := cfg.AudioSettings()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetTerminalReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	// Audio and records degrade to no-ops on failure
	sound := audio.NewSoundManager(audioCfg, log)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()

	var store *records.Store
	if cfg.Records.Enabled {
		store, err = records.Open(cfg.Records.Path, cfg.Records.Keep)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Records.Path).Msg("records unavailable")
			store = nil
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := newGame(screen, cfg, keys, engine.NewMonotonicTimeProvider(), sound, records.NewKeeper(store, log), seed, log)
	log.Info().Str("session", g.session.ID).Int64("seed", seed).Int("tick_rate", cfg.TickRate).Msg("game started")
	g.run()
	return nil
}
