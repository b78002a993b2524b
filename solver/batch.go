package solver

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/boggle/board"
)

// SolveBoards searches several boards against the same dictionary at once.
// The dictionary is only read, so it is shared by all the goroutines; each
// board is still searched by a single goroutine. workers limits how many
// boards are searched at the same time (0 means no limit). Results are in
// the same order as boards.
func SolveBoards(ctx context.Context, boards []*board.Board, g WordGraph,
	workers int) ([]WordSet, error) {

	results := make([]WordSet, len(boards))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, b := range boards {
		eg.Go(func() error {
			ws, err := FindAllWordsContext(ctx, b, g)
			if err != nil {
				return err
			}
			results[i] = ws
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Debug().Int("boards", len(boards)).Int("workers", workers).Msg("batch-done")
	return results, nil
}
