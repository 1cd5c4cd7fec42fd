package world

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Persister stores encoded snapshots under a slot name.
type Persister interface {
	SaveSnapshot(slot string, data []byte) error
	LoadSnapshot(slot string) ([]byte, error)
}

// Autosaver writes snapshots in the background. Only the most recent
// pending snapshot is kept; failures are logged and dropped.
type Autosaver struct {
	persister Persister
	slot      string
	logger    *log.Logger

	mu      sync.Mutex
	closed  bool
	pending chan []byte
	done    chan struct{}
}

// NewAutosaver starts a background writer for slot.
func NewAutosaver(p Persister, slot string, logger *log.Logger) *Autosaver {
	a := &Autosaver{
		persister: p,
		slot:      slot,
		logger:    logger,
		pending:   make(chan []byte, 1),
		done:      make(chan struct{}),
	}
	go a.loop()
	return a
}

func (a *Autosaver) loop() {
	defer close(a.done)
	for data := range a.pending {
		if err := a.persister.SaveSnapshot(a.slot, data); err != nil {
			a.logger.Debug("autosave failed", "slot", a.slot, "error", err)
		}
	}
}

// Submit queues data for writing, replacing any snapshot not yet written.
// It never blocks on the persister.
func (a *Autosaver) Submit(data []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	select {
	case <-a.pending:
	default:
	}
	a.pending <- data
}

// Close writes any pending snapshot and stops the writer.
func (a *Autosaver) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.pending)
	}
	a.mu.Unlock()
	<-a.done
}
