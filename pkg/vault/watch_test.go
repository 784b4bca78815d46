package vault

import (
	"testing"
	"time"
)

func TestThrottleCoalesces(t *testing.T) {
	events := make(chan Event, 1)
	send := func(ev Event) { events <- ev }

	th := newChangeThrottle(50 * time.Millisecond)
	defer th.Stop()
	th.Enqueue("b.md", send)
	th.Enqueue("a.md", send)
	th.Enqueue("b.md", send)

	select {
	case ev := <-events:
		if len(ev.Paths) != 2 || ev.Paths[0] != "a.md" || ev.Paths[1] != "b.md" {
			t.Errorf("coalesced paths = %v, want [a.md b.md]", ev.Paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("throttle never flushed")
	}
}

func TestThrottleEmptyPathMeansRescan(t *testing.T) {
	events := make(chan Event, 1)
	th := newChangeThrottle(10 * time.Millisecond)
	defer th.Stop()
	th.Enqueue("", func(ev Event) { events <- ev })

	select {
	case ev := <-events:
		if len(ev.Paths) != 0 {
			t.Errorf("paths = %v, want empty", ev.Paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("throttle never flushed")
	}
}

func TestThrottleStopPreventsFlush(t *testing.T) {
	events := make(chan Event, 1)
	th := newChangeThrottle(100 * time.Millisecond)
	th.Enqueue("x.md", func(ev Event) { events <- ev })
	th.Stop()

	select {
	case <-events:
		t.Error("flush fired after Stop")
	case <-time.After(300 * time.Millisecond):
	}
}
