// Package workers provides the background workers of the serving process:
// the batch export worker that turns PENDING jobs into result files, and the
// retention worker that purges old finished jobs.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and returns once all in-flight work has
// stopped.
type Worker interface {
	Run(ctx context.Context)
}
