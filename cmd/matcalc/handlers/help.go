package handlers

import (
	"regexp"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"
)

var helpHandler = handler{
	Name:        "HELP",
	Mnemonic:    "HELP",
	Completer:   readline.PcItem("help"),
	Description: "Show the available commands and their descriptions.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		rows := [][]string{}

		for _, h := range Handlers {
			rows = append(rows, []string{h.Mnemonic, h.Description})
		}

		tui.Table(ws.Out, []string{"command", "description"}, rows)

		return nil
	},
}

var quitHandler = handler{
	Name:        "QUIT",
	Mnemonic:    "QUIT, Q or EXIT",
	Completer:   readline.PcItem("quit"),
	Parser:      regexp.MustCompile(`^(?i)(QUIT|Q|EXIT)$`),
	Description: "Exit the calculator.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		return ErrQuit
	},
}
