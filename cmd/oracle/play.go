package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-oracle/internal/clients/gemini"
	"github.com/KirkDiggler/rpg-oracle/internal/config"
	"github.com/KirkDiggler/rpg-oracle/internal/entities"
	"github.com/KirkDiggler/rpg-oracle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-oracle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-oracle/internal/redis"
	"github.com/KirkDiggler/rpg-oracle/internal/repositories/labels"
	"github.com/KirkDiggler/rpg-oracle/internal/transcript"
)

const quitCommand = "/quit"

var (
	playOpts         entities.GameOptions
	transcriptPath   string
	transcriptFormat string
	envFile          string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playOpts.Language, "language", entities.DefaultLanguage, "narration language")
	playCmd.Flags().StringVar(&playOpts.Location, "location", entities.Random, "city the story is set in")
	playCmd.Flags().StringVar(&playOpts.Year, "year", entities.Random, "year the story is set in")
	playCmd.Flags().StringVar(&playOpts.Gender, "gender", entities.Random, "character gender")
	playCmd.Flags().StringVar(&playOpts.Age, "age", entities.Random, "character age")
	playCmd.Flags().StringVar(&transcriptPath, "transcript", "", "write the story to this file on exit")
	playCmd.Flags().StringVar(&transcriptFormat, "transcript-format", transcript.FormatPDF, "transcript format: pdf or text")
	playCmd.Flags().StringVar(&envFile, "env-file", ".env", "optional file of environment variables")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	cache, closeCache, err := labelCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up label cache: %w", err)
	}
	defer closeCache()

	client, closeClient, err := gemini.NewFromSDK(ctx, &gemini.SDKConfig{
		APIKey:     cfg.APIKey,
		TextModel:  cfg.TextModel,
		ImageModel: cfg.ImageModel,
		EditModel:  cfg.EditModel,
		Labels:     cache,
	})
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer func() {
		if err := closeClient(); err != nil {
			log.Warn().Err(err).Msg("failed to close gemini client")
		}
	}()

	out := cmd.OutOrStdout()
	r := newRenderer(out)

	svc, err := game.NewOrchestrator(&game.Config{
		Client:      client,
		IDGenerator: idgen.NewUUID("session"),
		Retry:       cfg.Retry(),
		OnChange:    r.Render,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	playErr := play(ctx, svc, playOpts, cmd.InOrStdin(), out)

	if transcriptPath != "" {
		if err := writeTranscript(transcriptPath, transcriptFormat, svc.Snapshot()); err != nil {
			log.Error().Err(err).Str("path", transcriptPath).Msg("failed to write transcript")
		} else {
			fmt.Fprintf(out, "\nTranscript written to %s\n", transcriptPath)
		}
	}

	return playErr
}

// labelCache builds the configured label repository. The returned func
// releases it.
func labelCache(ctx context.Context, cfg *config.Config) (labels.Repository, func(), error) {
	noop := func() {}

	switch cfg.LabelCache {
	case config.LabelCacheMemory:
		return labels.NewInMemory(clock.New(), cfg.LabelCacheTTL), noop, nil
	case config.LabelCacheRedis:
		client, err := redis.Connect(ctx, cfg.RedisAddr, nil)
		if err != nil {
			return nil, noop, err
		}
		repo, err := labels.NewRedis(&labels.RedisConfig{
			Client: client,
			TTL:    cfg.LabelCacheTTL,
		})
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return repo, func() { _ = client.Close() }, nil
	default:
		return nil, noop, nil
	}
}

// play starts a game and feeds it lines from in until the game ends, the
// input runs out, or the player types /quit
func play(ctx context.Context, svc game.Service, opts entities.GameOptions, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "The Oracle stirs...")

	if _, err := svc.StartGame(ctx, &game.StartGameInput{Options: opts}); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		snap := svc.Snapshot()
		if snap.Stage != entities.StagePlaying {
			return nil
		}

		fmt.Fprintf(out, "%s ", actionPrompt(snap))
		if !scanner.Scan() {
			return scanner.Err()
		}

		text, quit := resolveInput(scanner.Text(), snap.Choices)
		if quit {
			return nil
		}
		if text == "" {
			continue
		}

		if _, err := svc.SubmitChoice(ctx, &game.SubmitChoiceInput{Text: text}); err != nil {
			return err
		}
	}
}

// resolveInput turns a typed line into the action text. A number picks the
// choice listed at that position; anything else is a free-form action.
func resolveInput(line string, choices []entities.Choice) (string, bool) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, quitCommand) {
		return "", true
	}

	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1].Text, false
	}

	return line, false
}

func actionPrompt(snap *game.Snapshot) string {
	if snap.Character != nil && snap.Character.Labels.TypeYourAction != "" {
		return snap.Character.Labels.TypeYourAction
	}
	return ">"
}

func writeTranscript(path, format string, snap *game.Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return transcript.Write(f, format, snap)
}
