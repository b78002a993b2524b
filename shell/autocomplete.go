package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names and their options.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"board", "exit", "help", "lexicon", "load", "new", "prefix", "save",
	"script", "show", "solve", "survey", "word",
}

var commandOptions = map[string][]string{
	"new":    {"-dist"},
	"survey": {"-size"},
}

var optionValues = map[string][]string{
	"dist": {"uniform", "english"},
}

var helpTopics = []string{"script", "solve", "survey"}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	default:
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastComplete string
		if endsWithSpace {
			lastComplete = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastComplete = fields[len(fields)-2]
		}
		if strings.HasPrefix(lastComplete, "-") {
			completions = optionValues[strings.TrimPrefix(lastComplete, "-")]
		} else if cmdName == "help" {
			completions = helpTopics
		} else {
			completions = commandOptions[cmdName]
		}
	}

	var matches [][]rune
	for _, comp := range completions {
		if strings.HasPrefix(comp, prefix) {
			matches = append(matches, []rune(comp[len(prefix):]+" "))
		}
	}
	sort.Slice(matches, func(i, j int) bool { return string(matches[i]) < string(matches[j]) })
	return matches, len([]rune(prefix))
}
