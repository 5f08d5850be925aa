package services

import (
	"context"
	"log"
	"time"
)

// StaleUploadMarker fails file records stuck in processing since before cutoff.
type StaleUploadMarker interface {
	FailStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// StartStaleUploadWorker periodically marks uploads that have been processing
// longer than maxAge as failed, so a crashed upload does not stay "processing"
// forever. The worker stops when ctx is done.
func StartStaleUploadWorker(ctx context.Context, interval, maxAge time.Duration, repo StaleUploadMarker) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("stale upload worker: shutting down")
				return
			case <-ticker.C:
				sweepStaleUploads(ctx, time.Now().Add(-maxAge), repo)
			}
		}
	}()
}

func sweepStaleUploads(ctx context.Context, cutoff time.Time, repo StaleUploadMarker) {
	n, err := repo.FailStale(ctx, cutoff)
	if err != nil {
		log.Println("stale upload worker: error marking stale uploads:", err)
		return
	}
	if n > 0 {
		log.Printf("stale upload worker: marked %d uploads failed", n)
	}
}
