package sse

import (
	"strings"
	"testing"
	"time"
)

func recv(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestPublishProjectUpdate(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()

	ch := b.Subscribe()
	b.PublishProjectUpdate("demo")

	msg := recv(t, ch)
	if !strings.Contains(msg, "event: project.updated") {
		t.Errorf("msg = %q", msg)
	}
	if !strings.Contains(msg, `"folder":"demo"`) {
		t.Errorf("msg = %q, want folder payload", msg)
	}
}

func TestCatalogEventThrottled(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()

	ch := b.Subscribe()

	b.PublishProjectUpdate("a")
	first := recv(t, ch) // project.updated
	if !strings.Contains(first, "project.updated") {
		t.Fatalf("msg = %q", first)
	}
	// First content event also emits catalog.updated.
	if !strings.Contains(recv(t, ch), "catalog.updated") {
		t.Fatal("expected catalog.updated after first content event")
	}

	// A second event inside the throttle window emits only the content event.
	b.PublishProjectUpdate("b")
	if !strings.Contains(recv(t, ch), "project.updated") {
		t.Fatal("expected second project.updated")
	}
	select {
	case msg := <-ch:
		t.Fatalf("unexpected extra event %q inside throttle window", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLinksUpdate(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()

	ch := b.Subscribe()
	b.PublishLinksUpdate()
	if !strings.Contains(recv(t, ch), "links.updated") {
		t.Error("expected links.updated event")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()

	ch := b.Subscribe()
	b.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestClientCount(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()

	a := b.Subscribe()
	c := b.Subscribe()
	if n := b.ClientCount(); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	b.Unsubscribe(a)
	b.Unsubscribe(c)
}

func TestPublishAfterClose(t *testing.T) {
	b := NewBroker(time.Hour)
	b.Close()
	// Must not panic or block.
	b.PublishProjectUpdate("x")
	b.PublishLinksUpdate()
	if n := b.ClientCount(); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}
