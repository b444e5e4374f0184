package main

import (
	"strings"

	"github.com/atotto/clipboard"
)

// copyRow puts the current row on the system clipboard. The text is also
// kept in an internal fallback so paste keeps working on systems without a
// clipboard service.
func (e *Editor) copyRow() {
	if e.cy >= len(e.rows) {
		return
	}
	e.clipboard = string(e.rows[e.cy].chars)
	if err := clipboard.WriteAll(e.clipboard); err != nil {
		e.setStatusMessage("Copied line (internal clipboard: %v)", err)
		return
	}
	e.setStatusMessage("Copied line")
}

// cutRow copies the current row and removes it from the buffer.
func (e *Editor) cutRow() {
	if e.cy >= len(e.rows) {
		return
	}
	e.clipboard = string(e.rows[e.cy].chars)
	if err := clipboard.WriteAll(e.clipboard); err != nil {
		e.logger.Debug("system clipboard unavailable", "err", err)
	}
	e.deleteRow(e.cy)

	if e.cy >= len(e.rows) && e.cy > 0 {
		e.cy--
	}
	rowlen := 0
	if e.cy < len(e.rows) {
		rowlen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
	e.setStatusMessage("Cut line")
}

// paste inserts the clipboard contents at the cursor, preferring the system
// clipboard and falling back to the last internal copy.
func (e *Editor) paste() {
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		text = e.clipboard
	}
	if text == "" {
		return
	}
	e.insertText(text)
}

// insertText types text at the cursor; newlines split rows exactly as if
// they had been typed.
func (e *Editor) insertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			e.insertNewline()
		case '\r':
			// stray carriage returns are dropped
		default:
			e.insertChar(text[i])
		}
	}
}
