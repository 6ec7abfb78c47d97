package handlers

import (
	"fmt"
	"strconv"

	"github.com/evilsocket/islazy/str"
)

func parseInts(raw ...string) ([]int, error) {
	out := make([]int, len(raw))
	for i, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// parseValues parses a comma separated list of floats.
func parseValues(raw string) ([]float64, error) {
	values := str.Comma(raw)
	if len(values) == 0 {
		return nil, fmt.Errorf("no values given")
	}

	data := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		data[i] = f
	}
	return data, nil
}

func checkIndex(name string, i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return fmt.Errorf("index (%d,%d) out of range for %s (%dx%d)", i, j, name, rows, cols)
	}
	return nil
}
