package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// WordSummary describes the words found on a board.
type WordSummary struct {
	Total        int              `yaml:"total"`
	ByLength     map[int][]string `yaml:"by_length"`
	MeanLength   float64          `yaml:"mean_length"`
	MedianLength float64          `yaml:"median_length"`
	Longest      []string         `yaml:"longest"`

	lengths []float64
}

// Summarize groups words by length. The input is not modified.
func Summarize(words []string) *WordSummary {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	ws := &WordSummary{
		Total:    len(sorted),
		ByLength: lo.GroupBy(sorted, func(w string) int { return len(w) }),
		lengths: lo.Map(sorted, func(w string, _ int) float64 {
			return float64(len(w))
		}),
	}
	if ws.Total == 0 {
		return ws
	}
	sort.Float64s(ws.lengths)
	ws.MeanLength = stat.Mean(ws.lengths, nil)
	ws.MedianLength = stat.Quantile(0.5, stat.Empirical, ws.lengths, nil)
	ws.Longest = ws.ByLength[int(ws.lengths[len(ws.lengths)-1])]
	return ws
}

// Lengths returns the distinct word lengths in increasing order.
func (ws *WordSummary) Lengths() []int {
	lengths := lo.Keys(ws.ByLength)
	sort.Ints(lengths)
	return lengths
}

// WriteText writes the word count followed by one line per word length:
//
//	Found 3 words.
//	 -  2 words of size 3: [CAT, TEA]
//	 -  1 words of size 4: [CATS]
func (ws *WordSummary) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Found %d words.\n", ws.Total); err != nil {
		return err
	}
	for _, l := range ws.Lengths() {
		bucket := ws.ByLength[l]
		_, err := fmt.Fprintf(w, " - %2d words of size %d: [%s]\n",
			len(bucket), l, strings.Join(bucket, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteHistogram draws a histogram of word lengths. Nothing is written if
// there are no words.
func (ws *WordSummary) WriteHistogram(w io.Writer, bins int) error {
	if ws.Total == 0 {
		return nil
	}
	hist := histogram.Hist(bins, ws.lengths)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}
