package services

import (
	"context"
	"fmt"
)

// batchSize is the fixed chunk size for all import writes.
const batchSize = 100

// writeBatches writes items in fixed-size chunks. A failed chunk is
// recorded as an error string and does not stop or roll back the
// remaining chunks: imports apply partially and report what happened.
func writeBatches[T any](ctx context.Context, items []T, size int, write func(context.Context, []T) (int, error)) (int, []string) {
	inserted := 0
	errs := make([]string, 0)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		n, err := write(ctx, items[i:end])
		if err != nil {
			errs = append(errs, fmt.Sprintf("batch %d: %v", i, err))
			continue
		}
		inserted += n
	}
	return inserted, errs
}
