package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/board"
	"github.com/domino14/boggle/config"
	"github.com/domino14/boggle/lexicon"
	"github.com/domino14/boggle/runner"
)

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var buf bytes.Buffer
	if len(cmd.args) == 0 {
		usage(&buf)
	} else {
		usageTopic(&buf, cmd.args[0])
	}
	return msg(strings.TrimRight(buf.String(), "\n")), nil
}

func (sc *ShellController) setCurrentBoard(b *board.Board) *Response {
	sc.curBoard = b
	sc.lastResult = nil
	return msg(strings.TrimRight(b.String(), "\n"))
}

func (sc *ShellController) newBoard(cmd *shellcmd) (*Response, error) {
	dim := sc.cfg.GetInt(config.ConfigBoardSize)
	if len(cmd.args) > 0 {
		var err error
		dim, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("bad board size %q", cmd.args[0])
		}
	}
	if dim < 1 || dim > board.MaxDim {
		return nil, fmt.Errorf("board size must be between 1 and %d", board.MaxDim)
	}
	if d := cmd.options.String("dist"); d != "" {
		if _, err := board.NamedDistribution(d); err != nil {
			return nil, err
		}
		sc.cfg.Set(config.ConfigLetterDist, d)
		if err := sc.rebuildRunner(sc.runner.Lexicon()); err != nil {
			return nil, err
		}
	}
	b, err := sc.runner.RandomBoard(dim)
	if err != nil {
		return nil, err
	}
	return sc.setCurrentBoard(b), nil
}

func (sc *ShellController) setBoard(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("give the board one row per argument, e.g. board CAT XXX XXX")
	}
	b, err := board.New(cmd.args)
	if err != nil {
		return nil, err
	}
	return sc.setCurrentBoard(b), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("load takes the path of a board file")
	}
	b, err := board.LoadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return sc.setCurrentBoard(b), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.curBoard == nil {
		return nil, errNoBoard
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("save takes the path of a board file")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := sc.curBoard.Save(f); err != nil {
		return nil, err
	}
	return msg("Saved board to " + cmd.args[0]), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.curBoard == nil {
		return nil, errNoBoard
	}
	disp := strings.TrimRight(sc.curBoard.String(), "\n")
	if sc.lastResult != nil {
		disp += fmt.Sprintf("\nLast solve found %d words.", len(sc.lastResult.Words))
	}
	return msg(disp), nil
}

func (sc *ShellController) solve(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if sc.curBoard == nil {
		return nil, errNoBoard
	}
	res, err := sc.runner.Solve(ctx, sc.curBoard)
	if err != nil {
		return nil, err
	}
	sc.lastResult = res
	var buf bytes.Buffer
	err = res.Write(&buf, sc.cfg.GetString(config.ConfigOutput),
		sc.cfg.GetInt(config.ConfigHistogramBins))
	if err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(buf.String(), "\n")), nil
}

func (sc *ShellController) word(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("word takes a single word")
	}
	w := strings.ToUpper(cmd.args[0])
	if sc.runner.Lexicon().HasWord(w) {
		return msg(w + " is valid in " + sc.runner.Lexicon().Name()), nil
	}
	return msg(w + " is not valid in " + sc.runner.Lexicon().Name()), nil
}

func (sc *ShellController) prefix(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("prefix takes a single string")
	}
	p := strings.ToUpper(cmd.args[0])
	if sc.runner.Lexicon().HasPrefix(p) {
		return msg(p + " starts at least one word"), nil
	}
	return msg(p + " starts no words"), nil
}

func (sc *ShellController) rebuildRunner(lex *lexicon.Lexicon) error {
	r, err := runner.NewRunner(sc.cfg, lex)
	if err != nil {
		return err
	}
	sc.runner = r
	return nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		lex := sc.runner.Lexicon()
		return msg(fmt.Sprintf("%s: %d words, checksum %016x", lex.Name(), lex.NumWords(),
			lex.Checksum())), nil
	}
	lex, err := lexicon.Get(sc.cfg, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.runner.SetLexicon(lex)
	sc.lastResult = nil
	log.Debug().Str("lexicon", lex.Name()).Msg("switched-lexicon")
	return msg(fmt.Sprintf("Loaded %s: %d words", lex.Name(), lex.NumWords())), nil
}

func (sc *ShellController) survey(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("survey takes the number of boards to solve")
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("bad number of boards %q", cmd.args[0])
	}
	dim, err := cmd.options.IntDefault("size", sc.cfg.GetInt(config.ConfigBoardSize))
	if err != nil {
		return nil, err
	}
	if dim < 1 || dim > board.MaxDim {
		return nil, fmt.Errorf("board size must be between 1 and %d", board.MaxDim)
	}
	sr, err := sc.runner.Survey(ctx, n, dim)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := sr.Write(&buf, sc.cfg.GetString(config.ConfigOutput)); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(buf.String(), "\n")), nil
}
