package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindMovesCursorToMatch(t *testing.T) {
	e := newTestEditor("alpha", "beta", "gamma")
	feedKeys(e, "gam\r")

	e.find()
	require.Equal(t, 2, e.cy)
	require.Zero(t, e.cx)
}

func TestFindMapsMatchThroughTabs(t *testing.T) {
	e := newTestEditor("\tneedle here")
	feedKeys(e, "needle\r")

	e.find()
	require.Equal(t, 0, e.cy)
	// The match sits at render column 8; the raw column is 1, right after
	// the tab.
	require.Equal(t, 1, e.cx)
}

func TestFindArrowsStepThroughMatches(t *testing.T) {
	e := newTestEditor("one fish", "two fish", "red fish")
	feedKeys(e, "fish\x1b[B\x1b[B\r")

	e.find()
	require.Equal(t, 2, e.cy, "two Down presses step from the first match to the third")
}

func TestFindWrapsAround(t *testing.T) {
	e := newTestEditor("match", "nothing")
	feedKeys(e, "match\x1b[B\r")

	e.find()
	require.Equal(t, 0, e.cy, "stepping past the last match wraps to the first")
}

func TestFindCancelRestoresPosition(t *testing.T) {
	e := newTestEditor("alpha", "beta", "gamma")
	e.cy, e.cx = 1, 3
	e.rowoff = 1
	feedKeys(e, "gamma\x1b")

	e.find()
	require.Equal(t, 1, e.cy)
	require.Equal(t, 3, e.cx)
	require.Equal(t, 1, e.rowoff)
}

func TestFindNoMatchLeavesCursor(t *testing.T) {
	e := newTestEditor("alpha")
	feedKeys(e, "zzz\r")

	e.find()
	require.Zero(t, e.cy)
	require.Zero(t, e.cx)
}
