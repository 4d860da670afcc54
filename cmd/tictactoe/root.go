package main

import (
	"context"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/config"
	"ctchen222/tictactoe-cli/internal/console"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/logger"
	"ctchen222/tictactoe-cli/internal/random"
	"ctchen222/tictactoe-cli/internal/session"
	"ctchen222/tictactoe-cli/internal/telemetry"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	difficulty string
	size       int
	seed       uint64
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe [difficulty] [size]",
		Short: "Play tic-tac-toe in the terminal",
		Long: `tictactoe plays a game of tic-tac-toe on an N x N board (3 to 9).

Moves are typed as "<row> <col>". You play X. The difficulty picks who plays O:
manual (another person), easy (random moves) or medium (wins and blocks).`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&f.difficulty, "difficulty", "", "manual, easy or medium (env: TICTACTOE_DIFFICULTY)")
	rootCmd.Flags().IntVar(&f.size, "size", 0, "Board size from 3 to 9 (env: TICTACTOE_SIZE)")
	rootCmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for the bot, 0 picks one at random (env: TICTACTOE_SEED)")

	return rootCmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error shutting down telemetry: %v\n", err)
		}
	}()

	log := logger.New(cmd.ErrOrStderr(), logger.ParseLevel(cfg.LogLevel), cfg.Telemetry.Enabled())

	difficulty, err := bot.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	size, seed := cfg.Size, cfg.Seed

	if cmd.Flags().Changed("difficulty") {
		if difficulty, err = bot.ParseDifficulty(f.difficulty); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("size") {
		size = f.size
	}
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}

	if len(args) > 0 {
		if d, err := bot.ParseDifficulty(args[0]); err != nil {
			log.Warn("Invalid difficulty, using configured value", "value", args[0], "difficulty", difficulty.String())
		} else {
			difficulty = d
		}
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err != nil || n < game.MinSize || n > game.MaxSize {
			log.Warn("Invalid size, using configured value", "value", args[1], "size", size)
		} else {
			size = n
		}
	}

	rnd := random.New()
	if seed != 0 {
		rnd = random.NewSeeded(seed)
	}

	s, err := session.New(size, difficulty, session.WithRandom(rnd), session.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("Starting game", "session.id", s.ID(), "size", size, "difficulty", difficulty.String())

	return console.New(cmd.InOrStdin(), cmd.OutOrStdout()).Play(ctx, s)
}
