package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry is one timed analysis stage.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Total aggregates every Entry sharing a label.
type Total struct {
	Label string
	Calls int
	Dur   time.Duration
}

var (
	mu      sync.Mutex
	enabled bool
	record  []Entry
)

// Enable switches recording on or off. Track is a no-op while disabled.
func Enable(on bool) {
	mu.Lock()
	enabled = on
	mu.Unlock()
}

// Track records the duration since start under name.
//
//	defer prof.Track(time.Now(), "divisorVectors")
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	if enabled {
		record = append(record, Entry{Label: name, Dur: elapsed})
	}
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Totals folds entries per label, slowest label first.
func Totals(entries []Entry) []Total {
	idx := make(map[string]int)
	var out []Total
	for _, e := range entries {
		i, ok := idx[e.Label]
		if !ok {
			i = len(out)
			idx[e.Label] = i
			out = append(out, Total{Label: e.Label})
		}
		out[i].Calls++
		out[i].Dur += e.Dur
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dur > out[j].Dur })
	return out
}
