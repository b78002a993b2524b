package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/runner"
)

var (
	GitVersion string
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	cfg.AdjustRelativePaths(exPath)
	log.Debug().Str("version", GitVersion).Interface("settings", cfg.SanitizedSettings()).
		Msg("loaded-config")
	log.Debug().Uint64("total-memory", memory.TotalMemory()).Msg("system")

	if p := cfg.GetString(config.ConfigCPUProfile); p != "" {
		f, err := os.Create(p)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	st := time.Now()
	lex, err := lexicon.Get(cfg, cfg.GetString(config.ConfigLexiconPath))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load lexicon")
	}
	log.Info().Str("lexicon", lex.Name()).Int("num-words", lex.NumWords()).
		Dur("elapsed", time.Since(st)).Msg("loaded-lexicon")

	r, err := runner.NewRunner(cfg, lex)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create runner")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	format := cfg.GetString(config.ConfigOutput)
	if n := cfg.GetInt(config.ConfigNumBoards); n > 1 {
		sr, err := r.Survey(ctx, n, cfg.GetInt(config.ConfigBoardSize))
		if err != nil {
			log.Error().Err(err).Msg("survey failed")
			return
		}
		if err := sr.Write(os.Stdout, format); err != nil {
			log.Error().Err(err).Msg("")
		}
		return
	}

	b, err := r.NewBoard()
	if err != nil {
		log.Error().Err(err).Msg("could not make board")
		return
	}
	res, err := r.Solve(ctx, b)
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		return
	}
	if err := res.Write(os.Stdout, format, cfg.GetInt(config.ConfigHistogramBins)); err != nil {
		log.Error().Err(err).Msg("")
	}
}
