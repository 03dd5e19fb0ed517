// Package scheduler runs the periodic background jobs.
package scheduler

import (
	"context"
	"log"
	"time"

	"projecthub/internal/ports/input"
)

// Run completes past events every interval until ctx is cancelled. A
// non-positive interval disables the job.
func Run(ctx context.Context, events input.EventUseCase, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep(ctx, events)
		}
	}
}

func sweep(ctx context.Context, events input.EventUseCase) {
	n, err := events.CompletePastEvents(ctx)
	if err != nil {
		log.Printf("❌ Event sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("✅ Marked %d past event(s) as completed.", n)
	}
}
