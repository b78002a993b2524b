package shell

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

// scriptCommands are the shell commands a script may call, each as a global
// function boggle_<name>(args) returning the command's output.
var scriptCommands = []string{
	"new", "board", "load", "save", "show", "solve", "word", "prefix",
	"lexicon", "survey",
}

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("boggle_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

func luaCommand(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		sc := getShell(L)
		line := name
		if args := L.OptString(1, ""); args != "" {
			line += " " + args
		}
		cmd, err := extractFields(line)
		if err != nil {
			log.Err(err).Str("command", name).Msg("error-parsing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		ctx := L.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		r, err := sc.dispatch(ctx, cmd)
		if err != nil {
			log.Err(err).Str("command", name).Msg("error-executing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		if r == nil {
			L.Push(lua.LString(""))
		} else {
			L.Push(lua.LString(r.message))
		}
		// return number of results pushed to stack.
		return 1
	}
}

// numWords returns the number of words found by the last solve, or -1.
func numWords(L *lua.LState) int {
	sc := getShell(L)
	if sc.lastResult == nil {
		L.Push(lua.LNumber(-1))
		return 1
	}
	L.Push(lua.LNumber(len(sc.lastResult.Words)))
	return 1
}

func (sc *ShellController) script(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("boggle_shell", lsc)
	for _, name := range scriptCommands {
		L.SetGlobal("boggle_"+name, L.NewFunction(luaCommand(name)))
	}
	L.SetGlobal("boggle_num_words", L.NewFunction(numWords))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Str("script", filepath).Msg("script-failed")
		return nil, err
	}
	return nil, nil
}
