package handlers

import (
	"regexp"
	"strconv"

	"github.com/katalvlaran/lvmatrix/matrix"

	"github.com/chzyer/readline"
	log "github.com/sirupsen/logrus"
)

// operands resolves the two names of a binary command.
func operands(ws *Workspace, left, right string) (*matrix.Matrix, *matrix.Matrix, error) {
	a, err := ws.Get(left)
	if err != nil {
		return nil, nil, err
	}
	b, err := ws.Get(right)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

var addHandler = handler{
	Name:        "ADD",
	Mnemonic:    "ADD <A> <B>",
	Completer:   readline.PcItem("add"),
	Parser:      regexp.MustCompile(`^(?i)(ADD)\s+(\w+)\s+(\w+)$`),
	Description: "A += B. Fails when the shapes differ.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		a, b, err := operands(ws, args[0], args[1])
		if err != nil {
			return err
		}
		return a.Add(b)
	},
}

var subHandler = handler{
	Name:        "SUB",
	Mnemonic:    "SUB <A> <B>",
	Completer:   readline.PcItem("sub"),
	Parser:      regexp.MustCompile(`^(?i)(SUB)\s+(\w+)\s+(\w+)$`),
	Description: "A -= B. Does nothing when the shapes differ.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		a, b, err := operands(ws, args[0], args[1])
		if err != nil {
			return err
		}

		if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
			log.Warnf("SUB %s %s: shapes %dx%d and %dx%d differ, nothing done",
				args[0], args[1], a.Rows(), a.Cols(), b.Rows(), b.Cols())
		}

		a.Sub(b)
		return nil
	},
}

var mulHandler = handler{
	Name:        "MUL",
	Mnemonic:    "MUL <A> <B>",
	Completer:   readline.PcItem("mul"),
	Parser:      regexp.MustCompile(`^(?i)(MUL)\s+(\w+)\s+(\w+)$`),
	Description: "A = A x B. Fails when the columns of A differ from the rows of B.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		a, b, err := operands(ws, args[0], args[1])
		if err != nil {
			return err
		}
		return a.Mul(b)
	},
}

var scaleHandler = handler{
	Name:        "SCALE",
	Mnemonic:    "SCALE <A> <K>",
	Completer:   readline.PcItem("scale"),
	Parser:      regexp.MustCompile(`^(?i)(SCALE)\s+(\w+)\s+([^\s]+)$`),
	Description: "Multiply every element of A by the number K.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		a, err := ws.Get(args[0])
		if err != nil {
			return err
		}

		k, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}

		a.Scale(k)
		return nil
	},
}

var eqHandler = handler{
	Name:        "EQ",
	Mnemonic:    "EQ <A> <B>",
	Completer:   readline.PcItem("eq"),
	Parser:      regexp.MustCompile(`^(?i)(EQ)\s+(\w+)\s+(\w+)$`),
	Description: "Print whether A and B have the same shape and equal elements (1e-7 tolerance).",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		a, b, err := operands(ws, args[0], args[1])
		if err != nil {
			return err
		}

		ws.printf("%t\n", a.Equal(b))
		return nil
	},
}
