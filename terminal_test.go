package main

import (
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// openTestPty returns a pty pair or skips when the environment has none.
func openTestPty(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	return ptmx, tty
}

func TestRawModeSetsAndRestoresAttributes(t *testing.T) {
	_, tty := openTestPty(t)
	fd := int(tty.Fd())

	before, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}

	term, err := enableRawMode(fd)
	if err != nil {
		t.Fatalf("enableRawMode: %v", err)
	}

	raw, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		t.Fatalf("tcgetattr after raw: %v", err)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN) != 0 {
		t.Fatalf("local flags not cleared: %#x", raw.Lflag)
	}
	if raw.Iflag&(unix.IXON|unix.ICRNL|unix.BRKINT|unix.INPCK|unix.ISTRIP) != 0 {
		t.Fatalf("input flags not cleared: %#x", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Fatalf("output processing still on: %#x", raw.Oflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Fatalf("read policy VMIN=%d VTIME=%d, want 0/1", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}

	term.Restore()
	after, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		t.Fatalf("tcgetattr after restore: %v", err)
	}
	if after.Lflag != before.Lflag || after.Iflag != before.Iflag || after.Oflag != before.Oflag {
		t.Fatalf("attributes not restored: %#x/%#x/%#x vs %#x/%#x/%#x",
			after.Lflag, after.Iflag, after.Oflag, before.Lflag, before.Iflag, before.Oflag)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	_, tty := openTestPty(t)

	term, err := enableRawMode(int(tty.Fd()))
	if err != nil {
		t.Fatalf("enableRawMode: %v", err)
	}
	term.Restore()
	term.Restore() // second call must be a safe no-op
	var nilTerm *Terminal
	nilTerm.Restore() // and so must a nil receiver
}

func TestEnableRawModeRejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer f.Close()

	if _, err := enableRawMode(int(f.Fd())); err == nil {
		t.Fatalf("enableRawMode accepted a regular file")
	}
}

func TestReadKeyOverPty(t *testing.T) {
	ptmx, tty := openTestPty(t)

	if _, err := enableRawMode(int(tty.Fd())); err != nil {
		t.Fatalf("enableRawMode: %v", err)
	}

	if _, err := ptmx.WriteString("\x1b[A"); err != nil {
		t.Fatalf("write to pty: %v", err)
	}
	key, err := readKey(tty)
	if err != nil {
		t.Fatalf("readKey: %v", err)
	}
	if key != keyArrowUp {
		t.Fatalf("key = %d, want arrow up", key)
	}
}

func TestCursorPositionParsesReport(t *testing.T) {
	in := strings.NewReader("\x1b[24;80R")
	var out strings.Builder

	rows, cols, err := cursorPosition(in, &out)
	if err != nil {
		t.Fatalf("cursorPosition: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Fatalf("position = %d,%d, want 24,80", rows, cols)
	}
	if out.String() != "\x1b[6n" {
		t.Fatalf("status report request = %q", out.String())
	}
}
