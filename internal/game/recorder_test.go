package game

import (
	"sync"

	"github.com/lukeberry99/duck/internal/telemetry"
)

// recordingSink counts events by type for assertions.
type recordingSink struct {
	mu     sync.Mutex
	counts map[string]int
	metas  map[string][]telemetry.EventMetadata
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		counts: make(map[string]int),
		metas:  make(map[string][]telemetry.EventMetadata),
	}
}

func (r *recordingSink) RecordEvent(t telemetry.EventType, meta telemetry.EventMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[string(t)]++
	r.metas[string(t)] = append(r.metas[string(t)], meta)
	return nil
}

func (r *recordingSink) count(t string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[t]
}
