package main

// go build -buildvcs=false -o conch .

import (
	"flag"
	"fmt"
	"os"
)

// Version of the editor.
// Версия редактора.
const Version = "0.2.1"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	debugLog := flag.String("debug", "", "append debug logs to this file")
	flag.Parse()

	if *showVersion {
		fmt.Println("conch " + Version)
		return
	}

	e := newEditor()
	e.logger = newLogger(*debugLog)

	t, err := enableRawMode(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "conch: %v\n", err)
		os.Exit(1)
	}
	defer t.Restore()
	e.term = t

	if flag.NArg() > 0 {
		if err := e.open(flag.Arg(0)); err != nil {
			e.die("open "+flag.Arg(0), err)
		}
	}

	e.setStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = goto")

	for {
		e.refreshScreen()
		if !e.processKeypress() {
			break
		}
	}

	os.Stdout.WriteString(escClearScreen + escCursorHome)
}
