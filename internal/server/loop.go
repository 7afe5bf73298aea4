package server

import (
	"context"
	"time"
)

// RunLoop drives the simulation: one Tick per tick interval and a
// checkpoint save per checkpoint interval. Blocks until ctx is done, then
// takes a final checkpoint.
func (a *App) RunLoop(ctx context.Context) {
	tickEvery := a.Config.TickInterval()
	checkpointEvery := a.Config.CheckpointInterval()

	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()
	checkpoint := time.NewTicker(checkpointEvery)
	defer checkpoint.Stop()

	last := a.Clock.Now()
	for {
		select {
		case <-ctx.Done():
			if err := a.Checkpoint(); err != nil {
				a.Logger.Printf("final checkpoint: %v", err)
			}
			return
		case <-ticker.C:
			now := a.Clock.Now()
			a.Ledger().Tick(now.Sub(last))
			last = now
		case <-checkpoint.C:
			if err := a.Checkpoint(); err != nil {
				a.Logger.Printf("checkpoint: %v", err)
			}
		}
	}
}
