package metrics

import (
	"testing"
	"time"
)

func TestRecordResolveAggregates(t *testing.T) {
	c := NewCollector()

	c.RecordResolve("resume", 2*time.Millisecond)
	c.RecordResolve("resume", 6*time.Millisecond)
	c.RecordResolve("general", 4*time.Millisecond)

	snap := c.Snapshot()
	if snap.Topics["resume"] != 2 || snap.Topics["general"] != 1 {
		t.Fatalf("topic counts = %v", snap.Topics)
	}
	if snap.Resolve == nil {
		t.Fatal("no resolve snapshot")
	}
	if snap.Resolve.Count != 3 {
		t.Fatalf("resolve count = %d, want 3", snap.Resolve.Count)
	}
	if snap.Resolve.MinTimeMs != 2 || snap.Resolve.MaxTimeMs != 6 {
		t.Fatalf("resolve min/max = %d/%d, want 2/6", snap.Resolve.MinTimeMs, snap.Resolve.MaxTimeMs)
	}
	if snap.Resolve.TotalTimeMs != 12 {
		t.Fatalf("resolve total = %d, want 12", snap.Resolve.TotalTimeMs)
	}
	if snap.Resolve.AvgTimeMs != 4 {
		t.Fatalf("resolve avg = %f, want 4", snap.Resolve.AvgTimeMs)
	}
}

func TestRecordTurnSeparateFromResolve(t *testing.T) {
	c := NewCollector()

	c.RecordTurn(1200 * time.Millisecond)

	snap := c.Snapshot()
	if snap.Turn == nil || snap.Turn.Count != 1 {
		t.Fatalf("turn snapshot = %+v", snap.Turn)
	}
	if snap.Resolve != nil {
		t.Fatalf("resolve snapshot present without resolves: %+v", snap.Resolve)
	}
}

func TestSnapshotOnEmptyCollector(t *testing.T) {
	snap := NewCollector().Snapshot()

	if snap.Resolve != nil || snap.Turn != nil {
		t.Fatal("empty collector reports operation stats")
	}
	if len(snap.Topics) != 0 {
		t.Fatalf("empty collector reports topics: %v", snap.Topics)
	}
	if snap.UptimeSeconds < 0 {
		t.Fatalf("uptime = %f", snap.UptimeSeconds)
	}
}

func TestSnapshotReturnsCopy(t *testing.T) {
	c := NewCollector()
	c.RecordResolve("resume", time.Millisecond)

	snap := c.Snapshot()
	snap.Topics["resume"] = 99

	if got := c.Snapshot().Topics["resume"]; got != 1 {
		t.Fatalf("snapshot exposed internal map, count = %d", got)
	}
}
