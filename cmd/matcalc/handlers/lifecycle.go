package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/lvmatrix/matrix"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"
)

const float64Size = 8

var newHandler = handler{
	Name:        "NEW",
	Mnemonic:    "NEW <NAME> <ROWS> <COLS>",
	Completer:   readline.PcItem("new"),
	Parser:      regexp.MustCompile(`^(?i)(NEW)\s+(\w+)\s+(-?\d+)\s+(-?\d+)$`),
	Description: "Bind NAME to a new ROWSxCOLS zero matrix.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		dims, err := parseInts(args[1], args[2])
		if err != nil {
			return err
		}

		m, err := matrix.New(dims[0], dims[1])
		if err != nil {
			return err
		}

		ws.Put(args[0], m)
		return nil
	},
}

var letHandler = handler{
	Name:        "LET",
	Mnemonic:    "LET <NAME> <ROWS> <COLS> <V1,V2,...>",
	Completer:   readline.PcItem("let"),
	Parser:      regexp.MustCompile(`^(?i)(LET)\s+(\w+)\s+(-?\d+)\s+(-?\d+)\s+(.+)$`),
	Description: "Bind NAME to a ROWSxCOLS matrix filled row by row with the given values.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		dims, err := parseInts(args[1], args[2])
		if err != nil {
			return err
		}

		values, err := parseValues(args[3])
		if err != nil {
			return err
		}

		if dims[0] > 0 && dims[1] > 0 && len(values) != dims[0]*dims[1] {
			return fmt.Errorf("expected %d values, got %d", dims[0]*dims[1], len(values))
		}

		m, err := matrix.New(dims[0], dims[1])
		if err != nil {
			return err
		}

		for i := 0; i < dims[0]; i++ {
			copy(m.RawRowView(i), values[i*dims[1]:(i+1)*dims[1]])
		}

		ws.Put(args[0], m)
		return nil
	},
}

var setHandler = handler{
	Name:        "SET",
	Mnemonic:    "SET <NAME> <ROW> <COL> <VALUE>",
	Completer:   readline.PcItem("set"),
	Parser:      regexp.MustCompile(`^(?i)(SET)\s+(\w+)\s+(-?\d+)\s+(-?\d+)\s+([^\s]+)$`),
	Description: "Write VALUE into the cell ROW,COL of NAME.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		m, err := ws.Get(args[0])
		if err != nil {
			return err
		}

		idx, err := parseInts(args[1], args[2])
		if err != nil {
			return err
		} else if err = checkIndex(args[0], idx[0], idx[1], m.Rows(), m.Cols()); err != nil {
			return err
		}

		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return err
		}

		m.Set(idx[0], idx[1], v)
		return nil
	},
}

func showMatrix(ws *Workspace, name string, m *matrix.Matrix) {
	ws.printf("%s (%dx%d)\n%s", name, m.Rows(), m.Cols(), m)
	if m.IsEmpty() {
		ws.printf("\n")
	}
}

var showHandler = handler{
	Name:        "SHOW",
	Mnemonic:    "SHOW or S <NAME>",
	Completer:   readline.PcItem("show"),
	Parser:      regexp.MustCompile(`^(?i)(SHOW|S)\s+(\w+)$`),
	Description: "Print the matrix bound to NAME.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		m, err := ws.Get(args[0])
		if err != nil {
			return err
		}

		showMatrix(ws, args[0], m)
		return nil
	},
}

var listHandler = handler{
	Name:        "LIST",
	Mnemonic:    "LIST",
	Completer:   readline.PcItem("list"),
	Description: "List the bound matrices with their shape and storage size.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		rows := [][]string{}

		for _, name := range ws.Names() {
			m, _ := ws.Get(name)
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%dx%d", m.Rows(), m.Cols()),
				humanize.Bytes(uint64(m.Rows() * m.Cols() * float64Size)),
			})
		}

		tui.Table(ws.Out, []string{"name", "shape", "size"}, rows)

		return nil
	},
}

var copyHandler = handler{
	Name:        "COPY",
	Mnemonic:    "COPY <DST> <SRC>",
	Completer:   readline.PcItem("copy"),
	Parser:      regexp.MustCompile(`^(?i)(COPY|CP)\s+(\w+)\s+(\w+)$`),
	Description: "Bind DST to a deep copy of SRC.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		src, err := ws.Get(args[1])
		if err != nil {
			return err
		}

		dst, err := ws.Get(args[0])
		if err != nil {
			dst = matrix.Empty()
			ws.Put(args[0], dst)
		}

		dst.CopyFrom(src)
		return nil
	},
}

var moveHandler = handler{
	Name:        "MOVE",
	Mnemonic:    "MOVE <DST> <SRC>",
	Completer:   readline.PcItem("move"),
	Parser:      regexp.MustCompile(`^(?i)(MOVE|MV)\s+(\w+)\s+(\w+)$`),
	Description: "Hand the storage of SRC over to DST; SRC is left as an empty 0x0 matrix.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		src, err := ws.Get(args[1])
		if err != nil {
			return err
		}

		dst, err := ws.Get(args[0])
		if err != nil {
			ws.Put(args[0], src.Move())
			return nil
		}

		dst.MoveFrom(src)
		return nil
	},
}

var dropHandler = handler{
	Name:        "DROP",
	Mnemonic:    "DROP <NAME>",
	Completer:   readline.PcItem("drop"),
	Parser:      regexp.MustCompile(`^(?i)(DROP|DEL)\s+(\w+)$`),
	Description: "Release the matrix bound to NAME and forget it.",
	Callback: func(cmd string, args []string, ws *Workspace) error {
		return ws.Drop(args[0])
	},
}
