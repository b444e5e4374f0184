package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal holds the attributes the terminal had before raw mode was
// enabled, so they can be put back on any exit path.
// Terminal хранит исходные атрибуты терминала для восстановления при выходе.
type Terminal struct {
	fd   int
	orig *unix.Termios
}

// enableRawMode switches the terminal on fd into raw mode: no echo, no line
// buffering, no signal generation, no flow control, no output processing.
// VMIN=0/VTIME=1 makes reads return after at most a tenth of a second so the
// input loop stays responsive without spinning.
func enableRawMode(fd int) (*Terminal, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("not a terminal")
	}

	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return &Terminal{fd: fd, orig: orig}, nil
}

// Restore puts the saved attributes back. Safe to call more than once.
func (t *Terminal) Restore() {
	if t == nil || t.orig == nil {
		return
	}
	unix.IoctlSetTermios(t.fd, unix.TCSETS, t.orig)
	t.orig = nil
}

// windowSize reports the terminal extent in rows and columns. When the
// ioctl path is unavailable it parks the cursor in the bottom-right corner
// and parses the cursor position report instead.
func windowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	if _, werr := os.Stdout.WriteString("\x1b[999C\x1b[999B"); werr != nil {
		return 0, 0, werr
	}
	return cursorPosition(os.Stdin, os.Stdout)
}

// cursorPosition issues a device status report and reads back the
// "ESC [ rows ; cols R" answer.
func cursorPosition(in io.Reader, out io.Writer) (rows, cols int, err error) {
	if _, err = io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		n, rerr := in.Read(buf[i : i+1])
		if n != 1 || buf[i] == 'R' {
			break
		}
		if rerr != nil && rerr != io.EOF {
			return 0, 0, rerr
		}
		i++
	}

	if i < 2 || buf[0] != '\x1b' || buf[1] != '[' {
		return 0, 0, fmt.Errorf("bad cursor position report")
	}
	if _, err = fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// die restores the terminal, clears the screen and exits. Used for OS-call
// failures there is no point recovering from.
func (e *Editor) die(context string, err error) {
	e.term.Restore()
	os.Stdout.WriteString(escClearScreen + escCursorHome)
	e.logger.Error("fatal", "context", context, "err", err)
	fmt.Fprintf(os.Stderr, "conch: %s: %v\n", context, err)
	os.Exit(1)
}
