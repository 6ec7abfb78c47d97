// Command matcalc is an interactive calculator over named dense matrices.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmatrix/cmd/matcalc/handlers"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"
	log "github.com/sirupsen/logrus"
)

const prompt = "\033[32mmatcalc\033[0m » "

var (
	evalString  = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	batch       = flag.Bool("batch", false, "Exit after running -eval instead of starting the interactive prompt.")
	historyPath = flag.String("history", "/tmp/matcalc.tmp", "Path of the readline history file.")
	logFile     = flag.String("log-file", "", "If filled, logs are written to this file instead of stderr.")
	logDebug    = flag.Bool("debug", false, "Enable debug logs.")
)

func die(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *logDebug {
		log.SetLevel(log.DebugLevel)
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			die("cannot open log file %s: %v\n", *logFile, err)
		}
		log.SetOutput(f)
	}
}

// run dispatches every ;-separated command of line and reports whether the
// session should end.
func run(line string, ws *handlers.Workspace) bool {
	for _, cmd := range str.SplitBy(line, ";") {
		log.Debugf("dispatching %q", cmd)
		if err := handlers.Dispatch(cmd, ws); errors.Is(err, handlers.ErrQuit) {
			return true
		} else if err != nil {
			log.Error(err)
		}
	}
	return false
}

func main() {
	flag.Parse()

	setupLogging()

	ws := handlers.NewWorkspace(os.Stdout)

	if run(*evalString, ws) || *batch {
		return
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     *historyPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    handlers.Completers,
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
		} else if err == io.EOF {
			break
		} else if run(line, ws) {
			break
		}
	}
}
