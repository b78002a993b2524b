// Package bot serves board solving over NATS request/reply. Requests and
// responses are YAML documents.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/runner"
	"github.com/domino14/boggle/store"
)

const ConnectAttempts = 5

// Request asks the bot to solve one board.
type Request struct {
	Rows []string `yaml:"rows"`
}

// Response holds either the solved board or an error message.
type Response struct {
	Result *runner.Result `yaml:"result,omitempty"`
	Error  string         `yaml:"error,omitempty"`
}

type Bot struct {
	config  *config.Config
	runner  *runner.Runner
	store   *store.Store
	metrics *Metrics
}

type Option func(*Bot)

// WithStore makes the bot look up boards in s before searching them, and
// save what it finds there.
func WithStore(s *store.Store) Option {
	return func(bot *Bot) {
		bot.store = s
	}
}

func WithMetrics(m *Metrics) Option {
	return func(bot *Bot) {
		bot.metrics = m
	}
}

func NewBot(cfg *config.Config, r *runner.Runner, opts ...Option) *Bot {
	bot := &Bot{config: cfg, runner: r}
	for _, opt := range opts {
		opt(bot)
	}
	return bot
}

func errorResponse(message string, err error) *Response {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &Response{Error: msg}
}

func (bot *Bot) handle(ctx context.Context, data []byte) *Response {
	req := Request{}
	if err := yaml.Unmarshal(data, &req); err != nil {
		bot.metrics.outcome(OutcomeError)
		return errorResponse("Could not parse request", err)
	}
	b, err := board.New(req.Rows)
	if err != nil {
		bot.metrics.outcome(OutcomeError)
		return errorResponse("Bad board", err)
	}
	checksum := bot.runner.Lexicon().Checksum()

	if bot.store != nil {
		res, err := bot.store.Load(ctx, checksum, b.Rows())
		if err == nil {
			log.Debug().Int("dim", b.Dim()).Msg("result-from-store")
			bot.metrics.outcome(OutcomeCached)
			return &Response{Result: res}
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Msg("result-store-load-failed")
		}
	}

	res, err := bot.runner.Solve(ctx, b)
	if err != nil {
		bot.metrics.outcome(OutcomeError)
		return errorResponse("Search failed", err)
	}
	log.Info().Int("dim", b.Dim()).Int("words", len(res.Words)).
		Int64("elapsed-ms", res.ElapsedMs).Msg("solved-board")
	bot.metrics.solved(float64(res.ElapsedMs)/1000, len(res.Words))
	if res.TimedOut {
		bot.metrics.outcome(OutcomeTimedOut)
		return &Response{Result: res}
	}
	bot.metrics.outcome(OutcomeSolved)

	if bot.store != nil {
		if err := bot.store.Save(ctx, checksum, res); err != nil {
			log.Err(err).Msg("result-store-save-failed")
		}
	}
	return &Response{Result: res}
}

// Serve answers one encoded request with an encoded response.
func (bot *Bot) Serve(ctx context.Context, data []byte) []byte {
	resp := bot.handle(ctx, data)
	out, err := yaml.Marshal(resp)
	if err != nil {
		// Should never happen, but the client still needs an answer.
		out, _ = yaml.Marshal(errorResponse("Could not encode response", err))
	}
	return out
}

// Connect dials the configured NATS server, backing off between attempts.
func Connect(ctx context.Context, cfg *config.Config) (*nats.Conn, error) {
	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(cfg.GetString(config.ConfigNatsURL))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(ConnectAttempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Msg("could-not-connect-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// Main listens on channel until ctx is done.
func Main(ctx context.Context, channel string, bot *Bot) error {
	nc, err := Connect(ctx, bot.config)
	if err != nil {
		return err
	}
	defer nc.Drain()

	_, err = nc.Subscribe(channel, func(m *nats.Msg) {
		log.Info().Msgf("RECV: %d bytes", len(m.Data))
		if err := m.Respond(bot.Serve(ctx, m.Data)); err != nil {
			log.Err(err).Msg("could-not-respond")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}

	log.Info().Msgf("Listening on [%s]", channel)
	<-ctx.Done()
	return nil
}
