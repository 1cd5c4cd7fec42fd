package world

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestAutosaverWritesLatest(t *testing.T) {
	p := newMemPersister()
	a := NewAutosaver(p, "slot", log.New(io.Discard))

	for _, s := range []string{"one", "two", "three"} {
		a.Submit([]byte(s))
	}
	a.Close()

	data, err := p.LoadSnapshot("slot")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "three" {
		t.Errorf("saved %q, want the latest submission", data)
	}
}

func TestAutosaverSubmitAfterClose(t *testing.T) {
	p := newMemPersister()
	a := NewAutosaver(p, "slot", log.New(io.Discard))
	a.Close()
	a.Close()

	a.Submit([]byte("late"))
	if _, err := p.LoadSnapshot("slot"); err == nil {
		t.Error("submission after Close should be dropped")
	}
}
