// Package workers runs the background jobs of the backend.
// It defines the Worker interface and a Workers aggregate that runs every
// configured worker until the surrounding context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionSweeper is the part of the authenticator the session sweeper
// drives.
type SessionSweeper interface {
	SweepExpiredSessions(ctx context.Context) (int64, error)
}
