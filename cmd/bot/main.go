package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/bot"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/runner"
	"github.com/domino14/boggle/store"
)

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
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
	cfg.AdjustRelativePaths(exPath)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Interface("settings", cfg.SanitizedSettings()).Msg("loaded-config")

	lex, err := lexicon.Get(cfg, cfg.GetString(config.ConfigLexiconPath))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load lexicon")
	}
	r, err := runner.NewRunner(cfg, lex)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create runner")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []bot.Option
	if addr := cfg.GetString(config.ConfigRedisAddr); addr != "" {
		s := store.New(addr, cfg.GetString(config.ConfigRedisPassword), cfg.GetInt(config.ConfigRedisDB),
			store.WithTTL(cfg.GetDuration(config.ConfigResultTTL)))
		defer s.Close()
		if err := s.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", addr).Msg("could not reach redis")
		}
		log.Info().Str("addr", addr).Msg("caching results in redis")
		opts = append(opts, bot.WithStore(s))
	}
	if addr := cfg.GetString(config.ConfigMetricsAddr); addr != "" {
		opts = append(opts, bot.WithMetrics(bot.NewMetrics(prometheus.DefaultRegisterer)))
		// Start Metrics Server
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			log.Info().Str("addr", addr).Msg("starting metrics server")
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Err(err).Msg("metrics server stopped")
			}
		}()
	}

	b := bot.NewBot(cfg, r, opts...)
	if err := bot.Main(ctx, cfg.GetString(config.ConfigBotChannel), b); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
	log.Info().Msg("server gracefully shutting down")
}
