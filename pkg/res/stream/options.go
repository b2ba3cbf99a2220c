package stream

import "context"

type optionKey string

const workerOptionKey optionKey = "worker_options"

type workerOptions struct {
	MaxCount int
}

// WithWorkers stores the preferred worker count for Pump on the context.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{MaxCount: maxWorkers})
}

// Workers returns the worker count stored on the context, or the default.
func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}
