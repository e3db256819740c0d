// Package tui provides the Bubble Tea front end for Tetris.
// It handles the terminal UI loop, input mapping, and screen flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pausedTickRate is the loop rate while the game is paused or suspended.
const pausedTickRate = 10

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a model only follows its own tick chain.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

func nextLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// one interval at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
