package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/config"
	"github.com/cory-johannsen/colony/internal/game/action"
	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/dice"
	"github.com/cory-johannsen/colony/internal/game/loop"
	"github.com/cory-johannsen/colony/internal/game/render"
	"github.com/cory-johannsen/colony/internal/game/rules"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/observability"
	"github.com/cory-johannsen/colony/internal/scripting"
	"github.com/cory-johannsen/colony/internal/server"
	"github.com/cory-johannsen/colony/internal/storage/file"
)

type playFlags struct {
	configPath    string
	deterministic bool
	recentLog     string
	maxTurns      int
}

// loadConfig reads the configuration and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, flags *playFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("deterministic") {
		cfg.Game.Deterministic = flags.deterministic
	}
	if cmd.Flags().Changed("log") {
		cfg.Game.RecentLog = flags.recentLog
	}
	if cmd.Flags().Changed("max-turns") {
		cfg.Game.MaxTurns = flags.maxTurns
	}
	return cfg, cfg.Validate()
}

// loadWorld reads a YAML world (.yaml, .yml) or a flat game file.
func loadWorld(path string) (*world.Definition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return world.LoadDefinitionFromFile(path)
	default:
		return file.LoadFile(path)
	}
}

// newSource picks the seeded source in deterministic mode and crypto/rand
// otherwise.
func newSource(cfg config.GameConfig) dice.Source {
	if cfg.Deterministic {
		return dice.NewSeededSource(cfg.Seed)
	}
	return dice.NewCryptoSource()
}

func runPlay(cmd *cobra.Command, path string, flags *playFlags) error {
	start := time.Now()
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	session, err := observability.OpenSession(cfg.Logging, cfg.Game)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()
	logger := session.Logger

	def, err := loadWorld(path)
	if err != nil {
		return fmt.Errorf("loading game %q: %w", path, err)
	}
	roller := dice.NewLoggedRoller(newSource(cfg.Game), logger)
	g, err := state.FromDefinition(def, roller)
	if err != nil {
		return fmt.Errorf("building game %q: %w", path, err)
	}
	logger.Info("game loaded",
		zap.String("file", path),
		zap.Int("spaces", g.NumSpaces()),
		zap.Int("players", g.NumPlayers()),
		zap.Duration("elapsed", time.Since(start)),
	)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ruleOpts, closeScripts, err := ruleOptions(cfg, roller, logger)
	if err != nil {
		return err
	}
	defer closeScripts()

	reg := command.DefaultRegistry()
	l, err := loop.New(loop.Options{
		Game:       g,
		Reader:     command.NewReader(reg, os.Stdin),
		Dispatcher: action.NewDispatcher(g, store, logger),
		Engine:     rules.NewEngine(g, logger, ruleOpts...),
		Renderer:   render.New(os.Stdout, reg),
		Out:        os.Stdout,
		Recent:     session.Recent,
		MaxTurns:   cfg.Game.MaxTurns,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	lc := server.NewLifecycle(logger)
	lc.Add("game", gameService(l))
	return lc.Run(ctx)
}

// gameService runs the loop under the lifecycle. A stop requested by the
// lifecycle is a clean end.
func gameService(l *loop.Loop) server.Service {
	return &server.FuncService{
		StartFn: func(ctx context.Context) error {
			err := l.Run(ctx)
			if errors.Is(err, loop.ErrStopped) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
		StopFn: l.Stop,
	}
}

// ruleOptions turns the game and scripting settings into engine options.
// The returned func releases the Lua VM.
func ruleOptions(cfg config.Config, roller *dice.Roller, logger *zap.Logger) ([]rules.Option, func(), error) {
	var opts []rules.Option
	if cfg.Game.CrumblingRoof {
		opts = append(opts, rules.WithCrumblingRoof())
	}
	if cfg.Scripting.Dir == "" {
		return opts, func() {}, nil
	}
	mgr := scripting.NewManager(roller, logger)
	if err := mgr.LoadDir(cfg.Scripting.Dir, cfg.Scripting.InstructionLimit); err != nil {
		return nil, nil, err
	}
	return append(opts, rules.WithScripts(mgr)), mgr.Close, nil
}
