package runner

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/solver"
	"github.com/domino14/boggle/stats"
)

// SurveyConfidence is the confidence level of the interval printed by a
// survey, in percent.
const SurveyConfidence = 95

// Runner makes boards and solves them against one lexicon.
type Runner struct {
	cfg  *config.Config
	lex  *lexicon.Lexicon
	rng  *frand.RNG
	dist board.LetterDistribution
}

// Result is everything we know about one solved board.
type Result struct {
	Lexicon   string             `yaml:"lexicon"`
	Board     []string           `yaml:"board"`
	Words     []string           `yaml:"words"`
	Summary   *stats.WordSummary `yaml:"summary"`
	ElapsedMs int64              `yaml:"elapsed_ms"`
	TimedOut  bool               `yaml:"timed_out,omitempty"`
}

// SurveyResult summarizes the word counts of many random boards.
type SurveyResult struct {
	Lexicon   string  `yaml:"lexicon"`
	Boards    int     `yaml:"boards"`
	Dim       int     `yaml:"dim"`
	Mean      float64 `yaml:"mean"`
	Interval  float64 `yaml:"interval"`
	Stdev     float64 `yaml:"stdev"`
	Min       int     `yaml:"min"`
	Max       int     `yaml:"max"`
	ElapsedMs int64   `yaml:"elapsed_ms"`
}

func NewRunner(cfg *config.Config, lex *lexicon.Lexicon) (*Runner, error) {
	dist, err := board.NamedDistribution(cfg.GetString(config.ConfigLetterDist))
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:  cfg,
		lex:  lex,
		rng:  board.NewRNG(cfg.GetUint64(config.ConfigSeed)),
		dist: dist,
	}, nil
}

func (r *Runner) Lexicon() *lexicon.Lexicon {
	return r.lex
}

// SetLexicon swaps the lexicon used by later searches.
func (r *Runner) SetLexicon(lex *lexicon.Lexicon) {
	r.lex = lex
}

// RandomBoard makes a random board of the given size.
func (r *Runner) RandomBoard(dim int) (*board.Board, error) {
	return board.RandomFromDistribution(dim, r.rng, r.dist)
}

// NewBoard loads the configured board file, or makes a random board of the
// configured size if there is none.
func (r *Runner) NewBoard() (*board.Board, error) {
	if path := r.cfg.GetString(config.ConfigBoardFile); path != "" {
		return board.LoadFile(path)
	}
	return r.RandomBoard(r.cfg.GetInt(config.ConfigBoardSize))
}

func (r *Runner) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := r.cfg.GetDuration(config.ConfigSearchTimeout); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// Solve finds all the words on b. If the search timeout runs out, the words
// found so far are returned and the result is marked as timed out.
func (r *Runner) Solve(ctx context.Context, b *board.Board) (*Result, error) {
	ctx, cancel := r.searchContext(ctx)
	defer cancel()

	st := time.Now()
	words, err := solver.FindAllWordsContext(ctx, b, r.lex.Trie())
	elapsed := time.Since(st)
	timedOut := false
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		log.Warn().Dur("elapsed", elapsed).Int("found", words.Len()).Msg("search-timed-out")
		timedOut = true
	}
	sorted := words.Sorted()
	return &Result{
		Lexicon:   r.lex.Name(),
		Board:     b.Rows(),
		Words:     sorted,
		Summary:   stats.Summarize(sorted),
		ElapsedMs: elapsed.Milliseconds(),
		TimedOut:  timedOut,
	}, nil
}

// Survey solves n random boards of size dim and reports how many words they
// hold on average.
func (r *Runner) Survey(ctx context.Context, n, dim int) (*SurveyResult, error) {
	boards := make([]*board.Board, n)
	for i := range boards {
		b, err := r.RandomBoard(dim)
		if err != nil {
			return nil, err
		}
		boards[i] = b
	}

	ctx, cancel := r.searchContext(ctx)
	defer cancel()

	st := time.Now()
	results, err := solver.SolveBoards(ctx, boards, r.lex.Trie(), r.cfg.GetInt(config.ConfigWorkers))
	if err != nil {
		return nil, err
	}
	counts := &stats.Statistic{}
	for _, ws := range results {
		counts.Push(float64(ws.Len()))
	}
	return &SurveyResult{
		Lexicon:   r.lex.Name(),
		Boards:    n,
		Dim:       dim,
		Mean:      counts.Mean(),
		Interval:  counts.ConfidenceInterval(SurveyConfidence),
		Stdev:     counts.Stdev(),
		Min:       int(counts.Min()),
		Max:       int(counts.Max()),
		ElapsedMs: time.Since(st).Milliseconds(),
	}, nil
}
