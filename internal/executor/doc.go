// Package executor runs a batch of named tasks on a bounded number of workers.
//
// It backs "oclogin cluster check", which probes every saved cluster's API
// server at once instead of one after another:
//
//	pool := executor.NewPool(5, logger)
//	results, err := pool.Run(ctx, tasks, func(completed, total int) {
//	    logger.Debug("progress", "completed", completed, "total", total)
//	})
//
// Results come back in task order. Tasks that never started because ctx was
// cancelled get a Result whose Error wraps ctx.Err().
package executor
