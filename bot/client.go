package bot

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/runner"
)

// DefaultRequestTimeout applies when the caller's context has no deadline.
const DefaultRequestTimeout = 10 * time.Second

type Client struct {
	// NATS connection
	nc      *nats.Conn
	channel string
}

func NewClient(nc *nats.Conn, channel string) *Client {
	return &Client{nc: nc, channel: channel}
}

func MakeRequest(b *board.Board) ([]byte, error) {
	return yaml.Marshal(&Request{Rows: b.Rows()})
}

// DecodeResponse turns a bot reply into a result, or the error the bot
// reported.
func DecodeResponse(data []byte) (*runner.Result, error) {
	resp := Response{}
	if err := yaml.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.New("bot returned: " + resp.Error)
	}
	if resp.Result == nil {
		return nil, errors.New("bot returned an empty response")
	}
	return resp.Result, nil
}

// RequestSolve sends a board to the bot and waits for its words.
func (c *Client) RequestSolve(ctx context.Context, b *board.Board) (*runner.Result, error) {
	data, err := MakeRequest(b)
	if err != nil {
		return nil, err
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultRequestTimeout)
		defer cancel()
	}
	res, err := c.nc.RequestWithContext(ctx, c.channel, data)
	if err != nil {
		if c.nc.LastError() != nil {
			log.Error().Msgf("%v for request", c.nc.LastError())
		}
		log.Error().Msgf("%v for request", err)
		return nil, err
	}
	log.Debug().Int("bytes", len(res.Data)).Msg("bot-response")
	return DecodeResponse(res.Data)
}
