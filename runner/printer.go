package runner

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/config"
)

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Write prints res in the given output format.
func (res *Result) Write(w io.Writer, format string, histogramBins int) error {
	if format == config.OutputYAML {
		return writeYAML(w, res)
	}
	var sb strings.Builder
	dim := len(res.Board)
	fmt.Fprintf(&sb, "%dx%d board:\n", dim, dim)
	b, err := board.New(res.Board)
	if err != nil {
		return err
	}
	sb.WriteString(b.String())
	fmt.Fprintf(&sb, "Search took %dms.\n", res.ElapsedMs)
	if res.TimedOut {
		sb.WriteString("Search timed out; the list below is incomplete.\n")
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if err := res.Summary.WriteText(w); err != nil {
		return err
	}
	return res.Summary.WriteHistogram(w, histogramBins)
}

// Write prints sr in the given output format.
func (sr *SurveyResult) Write(w io.Writer, format string) error {
	if format == config.OutputYAML {
		return writeYAML(w, sr)
	}
	_, err := fmt.Fprintf(w,
		"Solved %d random %dx%d boards in %dms.\n"+
			"Words per board: %.2f ± %.2f (%d%% confidence), stdev %.2f, min %d, max %d\n",
		sr.Boards, sr.Dim, sr.Dim, sr.ElapsedMs,
		sr.Mean, sr.Interval, SurveyConfidence, sr.Stdev, sr.Min, sr.Max)
	return err
}
