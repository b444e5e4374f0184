package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// VT100 escape sequences the renderer emits. The exact bytes matter for
// terminal compatibility.
const (
	escClearScreen  = "\x1b[2J"
	escClearLine    = "\x1b[K"
	escCursorHome   = "\x1b[H"
	escCursorHide   = "\x1b[?25l"
	escCursorShow   = "\x1b[?25h"
	escInvertColors = "\x1b[7m"
	escResetColors  = "\x1b[m"
)

// Rows reserved at the bottom for the status bar and the message bar.
const barRows = 2

// How long a status message stays on screen.
const statusMessageTTL = 5 * time.Second

// scroll chases the cursor: it recomputes the render column and pulls the
// row/column offsets just far enough that the cursor cell is inside the
// viewport. Runs before every frame.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.rows[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		e.rowoff = e.cy - e.screenRows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		e.coloff = e.rx - e.screenCols + 1
	}
}

// drawRows paints the visible slice of the buffer, a tilde on every row
// past the end, and the welcome banner when the buffer is empty.
// drawRows рисует видимую часть буфера.
func (e *Editor) drawRows(b *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				welcome := "conch editor -- version " + Version
				if len(welcome) > e.screenCols {
					welcome = welcome[:e.screenCols]
				}
				padding := (e.screenCols - len(welcome)) / 2
				if padding > 0 {
					b.WriteByte('~')
					padding--
				}
				for ; padding > 0; padding-- {
					b.WriteByte(' ')
				}
				b.WriteString(welcome)
			} else {
				b.WriteByte('~')
			}
		} else {
			render := e.rows[filerow].render
			if e.coloff < len(render) {
				line := render[e.coloff:]
				if len(line) > e.screenCols {
					line = line[:e.screenCols]
				}
				b.Write(line)
			}
		}
		b.WriteString(escClearLine)
		b.WriteString("\r\n")
	}
}

// drawStatusBar paints the reverse-video bar: file name, line count and
// dirty marker on the left, cursor position on the right.
func (e *Editor) drawStatusBar(b *bytes.Buffer) {
	b.WriteString(escInvertColors)

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if e.dirty > 0 {
		modified = " (modified)"
	}
	status := fmt.Sprintf("%s - %d lines%s", name, len(e.rows), modified)
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	rstatus := fmt.Sprintf("%d/%d", e.cy+1, len(e.rows))

	b.WriteString(status)
	for col := len(status); col < e.screenCols; col++ {
		if e.screenCols-col == len(rstatus) {
			b.WriteString(rstatus)
			break
		}
		b.WriteByte(' ')
	}

	b.WriteString(escResetColors)
	b.WriteString("\r\n")
}

// drawMessageBar paints the transient status message while it is younger
// than its TTL.
func (e *Editor) drawMessageBar(b *bytes.Buffer) {
	b.WriteString(escClearLine)
	msg := e.statusmsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && time.Since(e.statusTime) < statusMessageTTL {
		b.WriteString(msg)
	}
}

// renderFrame builds one complete frame: hide cursor, repaint from the
// origin, reposition the cursor relative to the viewport, show cursor.
func (e *Editor) renderFrame() []byte {
	e.scroll()

	var b bytes.Buffer
	b.WriteString(escCursorHide)
	b.WriteString(escCursorHome)

	e.drawRows(&b)
	e.drawStatusBar(&b)
	e.drawMessageBar(&b)

	fmt.Fprintf(&b, "\x1b[%d;%dH", e.cy-e.rowoff+1, e.rx-e.coloff+1)
	b.WriteString(escCursorShow)
	return b.Bytes()
}

// refreshScreen re-reads the terminal size and emits the frame in a single
// write, so the terminal never shows a partially painted screen.
func (e *Editor) refreshScreen() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if rows, cols, err := windowSize(); err == nil && rows > barRows {
			e.screenRows = rows - barRows
			e.screenCols = cols
		}
	}
	e.out.Write(e.renderFrame())
}
