package main

// Number of consecutive Ctrl-Q presses needed to abandon unsaved changes.
const quitConfirmCount = 2

// moveCursor shifts the cursor one cell. Horizontal moves wrap to the
// adjacent row end/start; vertical moves clamp against the row count, never
// the column count, and re-clamp cx because rows differ in length.
func (e *Editor) moveCursor(key int) {
	var row *Row
	if e.cy < len(e.rows) {
		row = e.rows[e.cy]
	}

	switch key {
	case keyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyArrowRight:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case keyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowlen := 0
	if e.cy < len(e.rows) {
		rowlen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// processKeypress reads one decoded key and dispatches it. Returns false
// when the session should end.
func (e *Editor) processKeypress() bool {
	key, err := readKey(e.in)
	if err != nil {
		e.die("read", err)
	}
	e.logger.Debug("key", "code", key)

	switch key {
	case keyEnter:
		e.insertNewline()

	case ctrl('q'):
		e.quitTimes--
		if e.dirty > 0 && e.quitTimes > 0 {
			e.setStatusMessage("WARNING! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitTimes)
			return true
		}
		return false

	case ctrl('s'):
		e.save()

	case ctrl('f'):
		e.find()

	case ctrl('g'):
		e.gotoLine()

	case ctrl('k'):
		e.cutRow()

	case ctrl('c'):
		e.copyRow()

	case ctrl('v'):
		e.paste()

	case keyHome:
		e.cx = 0

	case keyEnd:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case keyBackspace, ctrl('h'):
		e.delChar()

	case keyDelete:
		e.forwardDelChar()

	case keyPageUp, keyPageDown:
		dir := keyArrowUp
		if key == keyPageDown {
			dir = keyArrowDown
			e.cy = e.rowoff + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		} else {
			e.cy = e.rowoff
		}
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(dir)
		}

	case keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown:
		e.moveCursor(key)

	case keyEscape, ctrl('l'):
		// The screen repaints on every loop iteration anyway.

	default:
		if key < 128 {
			e.insertChar(byte(key))
		}
	}

	e.quitTimes = quitConfirmCount
	return true
}

// prompt reads a line of input on the message bar, repainting after every
// keystroke. Enter accepts a non-empty value; ESC cancels and returns "".
// The optional callback sees the buffer and the key after each press, which
// is what incremental search hangs off.
func (e *Editor) prompt(format string, callback func(string, int)) string {
	var buf []byte

	for {
		e.setStatusMessage(format, string(buf))
		e.refreshScreen()

		key, err := readKey(e.in)
		if err != nil {
			e.die("read", err)
		}

		switch key {
		case keyBackspace, ctrl('h'), keyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case keyEscape:
			e.setStatusMessage("")
			if callback != nil {
				callback(string(buf), key)
			}
			return ""

		case keyEnter:
			if len(buf) > 0 {
				e.setStatusMessage("")
				if callback != nil {
					callback(string(buf), key)
				}
				return string(buf)
			}

		default:
			if key >= 32 && key < 127 {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(string(buf), key)
		}
	}
}

// gotoLine jumps the cursor to a 1-based line number read from a prompt.
func (e *Editor) gotoLine() {
	input := e.prompt("Go to line: %s (ESC to cancel)", nil)
	if input == "" {
		return
	}

	n := 0
	for _, c := range input {
		if c < '0' || c > '9' {
			e.setStatusMessage("Not a line number: %s", input)
			return
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		n = 1
	}
	if n > len(e.rows) {
		n = len(e.rows)
	}
	if n > 0 {
		e.cy = n - 1
		e.cx = 0
	}
}
