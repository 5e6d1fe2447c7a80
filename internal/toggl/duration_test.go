package toggl

import (
	"testing"
	"time"
)

func TestEntryDuration_Stopped(t *testing.T) {
	now := time.Unix(1404810600, 0)
	dur, running := entryDuration(now, 30)

	if running {
		t.Fatalf("running = true, want false")
	}
	if dur != 30*time.Second {
		t.Fatalf("duration = %v, want 30s", dur)
	}
}

func TestEntryDuration_Running(t *testing.T) {
	now := time.Unix(1404810630, 0)
	dur, running := entryDuration(now, -1404810600)

	if !running {
		t.Fatalf("running = false, want true")
	}
	if dur != 30*time.Second {
		t.Fatalf("duration = %v, want 30s", dur)
	}
}

func TestEntryDuration_Zero(t *testing.T) {
	dur, running := entryDuration(time.Unix(1404810600, 0), 0)
	if running || dur != 0 {
		t.Fatalf("got (%v, %v), want (0, false)", dur, running)
	}
}
