package main

import "bytes"

// find is incremental search over the render text. Every keystroke in the
// prompt re-runs the search; Right/Down step to the next match and Left/Up
// to the previous one, wrapping around the buffer. Cancelling with ESC puts
// the cursor and the scroll position back where they were.
// find — инкрементальный поиск по буферу.
func (e *Editor) find() {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	lastMatch := -1
	direction := 1

	callback := func(query string, key int) {
		switch key {
		case keyEnter, keyEscape:
			lastMatch = -1
			direction = 1
			return
		case keyArrowRight, keyArrowDown:
			direction = 1
		case keyArrowLeft, keyArrowUp:
			direction = -1
		default:
			lastMatch = -1
			direction = 1
		}

		if query == "" {
			return
		}
		if lastMatch == -1 {
			direction = 1
		}

		current := lastMatch
		for range e.rows {
			current += direction
			if current == -1 {
				current = len(e.rows) - 1
			} else if current == len(e.rows) {
				current = 0
			}

			row := e.rows[current]
			match := bytes.Index(row.render, []byte(query))
			if match != -1 {
				lastMatch = current
				e.cy = current
				e.cx = row.rxToCx(match)
				// Force the next scroll to bring the match to the top.
				e.rowoff = len(e.rows)
				break
			}
		}
	}

	query := e.prompt("Search: %s (Use ESC/Arrows/Enter)", callback)
	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
	}
}
