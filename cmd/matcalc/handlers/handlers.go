package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
)

type handlerCb func(cmd string, args []string, ws *Workspace) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var Handlers = []handler{}
var Completers = (*readline.PrefixCompleter)(nil)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		// lifecycle
		newHandler,
		letHandler,
		setHandler,
		showHandler,
		listHandler,
		copyHandler,
		moveHandler,
		dropHandler,
		// arithmetic
		addHandler,
		subHandler,
		mulHandler,
		scaleHandler,
		eqHandler,
		// linear algebra
		transposeHandler,
		minorHandler,
		detHandler,
		complementsHandler,
		inverseHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range Handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(tmp...)
}

// Dispatch runs the first handler whose parser (or bare name) matches cmd.
func Dispatch(cmd string, ws *Workspace) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	for _, handler := range Handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				args = result[2:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			if err := handler.Callback(cmd, args, ws); err != nil {
				return fmt.Errorf("%s: %w", handler.Name, err)
			}
			return nil
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}
