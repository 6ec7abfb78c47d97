package handlers

import (
	"fmt"
	"regexp"
	"time"

	"github.com/katalvlaran/lvmatrix/matrix"

	"github.com/chzyer/readline"
	log "github.com/sirupsen/logrus"
)

// store binds res to dst and prints it, warning when an operation degraded
// to the empty matrix.
func store(ws *Workspace, op, dst, src string, res *matrix.Matrix) {
	if res.IsEmpty() {
		log.Warnf("%s %s: result is empty (input not square or singular)", op, src)
	}
	ws.Put(dst, res)
	showMatrix(ws, dst, res)
}

var transposeHandler = handler{
	Name:        "T",
	Mnemonic:    "T <DST> <SRC>",
	Completer:   readline.PcItem("t"),
	Parser:      regexp.MustCompile(`^(?i)(T|TRANSPOSE)\s+(\w+)\s+(\w+)$`),
	Description: "Bind DST to the transpose of SRC.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		src, err := ws.Get(args[1])
		if err != nil {
			return err
		}

		store(ws, "T", args[0], args[1], src.Transpose())
		return nil
	},
}

var minorHandler = handler{
	Name:        "MINOR",
	Mnemonic:    "MINOR <DST> <SRC> <ROW> <COL>",
	Completer:   readline.PcItem("minor"),
	Parser:      regexp.MustCompile(`^(?i)(MINOR)\s+(\w+)\s+(\w+)\s+(-?\d+)\s+(-?\d+)$`),
	Description: "Bind DST to SRC without row ROW and column COL.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		src, err := ws.Get(args[1])
		if err != nil {
			return err
		}

		idx, err := parseInts(args[2], args[3])
		if err != nil {
			return err
		} else if src.Rows() < 2 || src.Cols() < 2 {
			return fmt.Errorf("%s is %dx%d, a minor needs at least 2x2", args[1], src.Rows(), src.Cols())
		} else if err = checkIndex(args[1], idx[0], idx[1], src.Rows(), src.Cols()); err != nil {
			return err
		}

		store(ws, "MINOR", args[0], args[1], src.Minor(idx[0], idx[1]))
		return nil
	},
}

var detHandler = handler{
	Name:        "DET",
	Mnemonic:    "DET <NAME>",
	Completer:   readline.PcItem("det"),
	Parser:      regexp.MustCompile(`^(?i)(DET)\s+(\w+)$`),
	Description: "Print the determinant of NAME (0 when not square).",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		m, err := ws.Get(args[0])
		if err != nil {
			return err
		}

		start := time.Now()
		det := m.Determinant()
		log.Debugf("DET %s (%dx%d) computed in %s", args[0], m.Rows(), m.Cols(), time.Since(start))

		ws.printf("%g\n", det)
		return nil
	},
}

var complementsHandler = handler{
	Name:        "COMP",
	Mnemonic:    "COMP <DST> <SRC>",
	Completer:   readline.PcItem("comp"),
	Parser:      regexp.MustCompile(`^(?i)(COMP|COMPLEMENTS)\s+(\w+)\s+(\w+)$`),
	Description: "Bind DST to the cofactor matrix of SRC.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		src, err := ws.Get(args[1])
		if err != nil {
			return err
		}

		store(ws, "COMP", args[0], args[1], src.CalcComplements())
		return nil
	},
}

var inverseHandler = handler{
	Name:        "INV",
	Mnemonic:    "INV <DST> <SRC>",
	Completer:   readline.PcItem("inv"),
	Parser:      regexp.MustCompile(`^(?i)(INV|INVERSE)\s+(\w+)\s+(\w+)$`),
	Description: "Bind DST to the inverse of SRC.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		src, err := ws.Get(args[1])
		if err != nil {
			return err
		}

		start := time.Now()
		inv := src.Inverse()
		log.Debugf("INV %s (%dx%d) computed in %s", args[1], src.Rows(), src.Cols(), time.Since(start))

		store(ws, "INV", args[0], args[1], inv)
		return nil
	},
}
