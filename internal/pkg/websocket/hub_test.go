package websocket

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestBroadcastNeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	// The hub is not running, so the queue fills up and further events
	// must be dropped instead of blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Broadcast("newAnnouncement", map[string]int{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	default:
		// Give the goroutine a moment; Broadcast has no blocking path
		<-done
	}
}

func TestClientCountStartsEmpty(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	if got := hub.ClientCount(); got != 0 {
		t.Errorf("ClientCount() = %d, want 0", got)
	}
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	// Should be a no-op rather than a panic or deadlock
	hub.Broadcast("newAnnouncement", map[string]string{"title": "t"})
	hub.Broadcast("announcementDeleted", map[string]int64{"id": 1})

	if got := hub.ClientCount(); got != 0 {
		t.Errorf("ClientCount() = %d, want 0", got)
	}
}
