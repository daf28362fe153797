package tui

import tea "github.com/charmbracelet/bubbletea"

// mailbox hands render snapshots from scheduler goroutines to the bubbletea
// event loop. It holds at most one value and a newer snapshot replaces an
// unread one, so offer never blocks while the producer holds its lock.
type mailbox[T any] struct {
	ch chan T
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{ch: make(chan T, 1)}
}

func (b *mailbox[T]) offer(v T) {
	for {
		select {
		case b.ch <- v:
			return
		default:
		}
		select {
		case <-b.ch:
		default:
		}
	}
}

// wait returns a command that delivers the next snapshot as a message.
func (b *mailbox[T]) wait(wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return wrap(<-b.ch)
	}
}
