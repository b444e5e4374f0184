package main

import "io"

// Logical keys produced by the decoder. Values start past the byte range so
// they can never collide with literal input.
const (
	keyEnter     = '\r'
	keyEscape    = '\x1b'
	keyBackspace = 127

	keyArrowLeft = iota + 1000
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

// ctrl maps a letter to its control-key byte, the same stripping of bits 5
// and 6 the terminal itself performs.
func ctrl(c byte) int {
	return int(c & 0x1f)
}

// readKey blocks for the next byte of input and collapses escape sequences
// into logical keys. A lone ESC, or a sequence the terminal never finishes,
// decodes as a plain ESC rather than stalling the loop: the VTIME read
// policy bounds every look-ahead read.
func readKey(in io.Reader) (int, error) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n == 1 {
			break
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
	}

	if buf[0] != keyEscape {
		return int(buf[0]), nil
	}

	var seq [3]byte
	if n, _ := in.Read(seq[0:1]); n != 1 {
		return keyEscape, nil
	}
	if n, _ := in.Read(seq[1:2]); n != 1 {
		return keyEscape, nil
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			if n, _ := in.Read(seq[2:3]); n != 1 {
				return keyEscape, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return keyHome, nil
				case '3':
					return keyDelete, nil
				case '4', '8':
					return keyEnd, nil
				case '5':
					return keyPageUp, nil
				case '6':
					return keyPageDown, nil
				}
			}
		} else {
			switch seq[1] {
			case 'A':
				return keyArrowUp, nil
			case 'B':
				return keyArrowDown, nil
			case 'C':
				return keyArrowRight, nil
			case 'D':
				return keyArrowLeft, nil
			case 'H':
				return keyHome, nil
			case 'F':
				return keyEnd, nil
			}
		}
	case 'O':
		// Alternate encoding some terminals use for Home/End.
		switch seq[1] {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	}
	return keyEscape, nil
}
