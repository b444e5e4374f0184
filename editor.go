package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Editor represents the whole editing session: the row buffer, cursor and
// viewport state, and the terminal it talks to.
// Editor представляет состояние сеанса редактирования.
type Editor struct {
	cx, cy int // cursor in raw coordinates; cy may equal len(rows)
	rx     int // cursor column in render coordinates

	rowoff, coloff         int
	screenRows, screenCols int

	rows     []*Row
	dirty    int
	filename string

	statusmsg  string
	statusTime time.Time

	quitTimes int
	clipboard string // fallback when the system clipboard is unavailable

	in     io.Reader
	out    io.Writer
	term   *Terminal
	logger *slog.Logger
}

func newEditor() *Editor {
	return &Editor{
		screenRows: 24 - barRows,
		screenCols: 80,
		quitTimes:  quitConfirmCount,
		in:         os.Stdin,
		out:        os.Stdout,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// setStatusMessage replaces the message-bar text. It stays visible for five
// seconds of wall time.
func (e *Editor) setStatusMessage(format string, args ...any) {
	e.statusmsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

/*** row-level buffer operations ***/

// insertRow inserts a row at index at; anything outside [0, len(rows)] is a
// no-op.
func (e *Editor) insertRow(at int, line []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	e.rows = append(e.rows, nil)
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = newRow(line)
	e.dirty++
}

// deleteRow removes the row at index at; out of bounds is a no-op.
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	e.dirty++
}

/*** editing operations ***/

// insertChar types one byte at the cursor. On the virtual row past the end
// of the buffer a real empty row is created first.
func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rows[e.cy].insertChar(e.cx, c)
	e.cx++
	e.dirty++
}

// insertNewline splits the current row at the cursor, or opens an empty row
// above when the cursor is at column zero. The cursor lands on the start of
// the following row.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		tail := e.rows[e.cy].truncate(e.cx)
		e.insertRow(e.cy+1, tail)
	}
	e.cy++
	e.cx = 0
	e.dirty++
}

// delChar is backspace: it removes the byte before the cursor, or joins the
// row onto its predecessor when the cursor sits at column zero. At the very
// start of the buffer it does nothing.
func (e *Editor) delChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := e.rows[e.cy]
	if e.cx > 0 {
		row.deleteChar(e.cx - 1)
		e.cx--
	} else {
		prev := e.rows[e.cy-1]
		e.cx = len(prev.chars)
		prev.appendBytes(row.chars)
		e.deleteRow(e.cy)
		e.cy--
	}
	e.dirty++
}

// forwardDelChar is the Delete key: it removes the byte at the cursor
// without moving it, joining the next row up when the cursor sits at the
// end of a row. Past the end of the buffer, or at the very end of the last
// row, it does nothing.
func (e *Editor) forwardDelChar() {
	if e.cy >= len(e.rows) {
		return
	}

	row := e.rows[e.cy]
	if e.cx < len(row.chars) {
		row.deleteChar(e.cx)
		e.dirty++
		return
	}
	if e.cy == len(e.rows)-1 {
		return
	}
	row.appendBytes(e.rows[e.cy+1].chars)
	e.deleteRow(e.cy + 1)
	e.dirty++
}

/*** file I/O ***/

// rowsToString joins the raw rows with newlines, including one after the
// last row. This is exactly what gets persisted.
func (e *Editor) rowsToString() []byte {
	var b strings.Builder
	for _, row := range e.rows {
		b.Write(row.chars)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// open loads filename into the buffer. A file that does not exist yet is
// not an error: the buffer starts empty and the file is created on the
// first save. Line terminators are stripped; nothing else is normalized.
func (e *Editor) open(filename string) error {
	e.filename = filename

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			e.setStatusMessage("New file: %s", filename)
			return nil
		}
		return err
	}

	if len(data) > 0 {
		content := strings.TrimSuffix(string(data), "\n")
		for _, line := range strings.Split(content, "\n") {
			e.insertRow(len(e.rows), []byte(strings.TrimSuffix(line, "\r")))
		}
	}
	e.dirty = 0
	e.logger.Info("opened", "file", filename, "rows", len(e.rows))
	return nil
}

// save serializes the buffer to the associated file, prompting for a name
// when none is set yet. I/O failures are reported on the message bar and
// leave the dirty counter alone; only a complete write clears it.
func (e *Editor) save() {
	if e.filename == "" {
		name := e.prompt("Save as: %s (ESC to cancel)", nil)
		if name == "" {
			e.setStatusMessage("Save aborted")
			return
		}
		e.filename = name
	}

	buf := e.rowsToString()

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.setStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(buf))); err != nil {
		e.setStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	n, err := f.Write(buf)
	if err != nil {
		e.setStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != len(buf) {
		e.setStatusMessage("Can't save! Partial write: %d/%d bytes", n, len(buf))
		return
	}

	e.dirty = 0
	e.setStatusMessage("%d bytes written to disk", len(buf))
	e.logger.Info("saved", "file", e.filename, "bytes", len(buf))
}
