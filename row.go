package main

// Tab characters expand to the next multiple of this width in the render
// form. The raw content keeps the tab byte itself.
const tabStop = 8

// Row is one line of the buffer: the raw bytes as they will be saved, and
// the render form the screen and all column math work on.
// Row — одна строка буфера: исходные байты и производная форма отображения.
type Row struct {
	chars  []byte
	render []byte
}

func newRow(line []byte) *Row {
	r := &Row{chars: append([]byte(nil), line...)}
	r.update()
	return r
}

// update regenerates the render form from the raw content. Every mutation
// of chars must be followed by a call to this; render is never patched in
// place.
func (r *Row) update() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}

// cxToRx converts a raw column into a render column using the same tab
// expansion rule as update.
func (r *Row) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += tabStop - rx%tabStop
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx is the inverse mapping, used when a position found in the render
// form has to land the cursor on a raw column.
func (r *Row) rxToCx(rx int) int {
	cur := 0
	for cx := 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			cur += tabStop - cur%tabStop
		} else {
			cur++
		}
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

// insertChar inserts c at position at, clamping an out-of-range position to
// the end of the row.
func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
}

// deleteChar removes the byte at position at; out of range is a no-op.
func (r *Row) deleteChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
}

// appendBytes glues s onto the end of the row. Used when a deleted row is
// joined onto its predecessor.
func (r *Row) appendBytes(s []byte) {
	r.chars = append(r.chars, s...)
	r.update()
}

// truncate cuts the row at position at, returning the tail that was cut
// off. Used by newline insertion.
func (r *Row) truncate(at int) []byte {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	tail := append([]byte(nil), r.chars[at:]...)
	r.chars = r.chars[:at]
	r.update()
	return tail
}
