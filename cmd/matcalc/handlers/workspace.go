package handlers

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ErrUnknownMatrix is returned when a command names a matrix that was never defined.
var ErrUnknownMatrix = errors.New("unknown matrix")

// ErrQuit is returned by the QUIT handler; the REPL loop stops on it.
var ErrQuit = errors.New("quit")

// Workspace holds the named matrices of a session and the writer commands print to.
type Workspace struct {
	Out  io.Writer
	mats map[string]*matrix.Matrix
}

// NewWorkspace creates an empty workspace printing to out.
func NewWorkspace(out io.Writer) *Workspace {
	return &Workspace{
		Out:  out,
		mats: make(map[string]*matrix.Matrix),
	}
}

// Get returns the matrix bound to name.
func (ws *Workspace) Get(name string) (*matrix.Matrix, error) {
	if m, found := ws.mats[name]; found {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMatrix, name)
}

// Put binds m to name, releasing whatever was bound before.
func (ws *Workspace) Put(name string, m *matrix.Matrix) {
	if prev, found := ws.mats[name]; found && prev != m {
		prev.Release()
	}
	ws.mats[name] = m
}

// Drop releases the matrix bound to name and forgets the name.
func (ws *Workspace) Drop(name string) error {
	m, err := ws.Get(name)
	if err != nil {
		return err
	}
	m.Release()
	delete(ws.mats, name)
	return nil
}

// Names returns the bound names in lexical order.
func (ws *Workspace) Names() []string {
	names := make([]string, 0, len(ws.mats))
	for name := range ws.mats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ws *Workspace) printf(format string, args ...interface{}) {
	fmt.Fprintf(ws.Out, format, args...)
}
