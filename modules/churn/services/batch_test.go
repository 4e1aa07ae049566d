package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteBatches_ChunksAtSize(t *testing.T) {
	items := make([]int, 250)
	var calls [][]int

	inserted, errs := writeBatches(context.Background(), items, 100, func(_ context.Context, chunk []int) (int, error) {
		calls = append(calls, chunk)
		return len(chunk), nil
	})

	require.Equal(t, 250, inserted)
	require.Empty(t, errs)
	require.Len(t, calls, 3)
	require.Len(t, calls[0], 100)
	require.Len(t, calls[2], 50)
}

func TestWriteBatches_FailedChunkRecordedAndRemainingApplied(t *testing.T) {
	items := make([]int, 250)
	call := 0

	inserted, errs := writeBatches(context.Background(), items, 100, func(_ context.Context, chunk []int) (int, error) {
		call++
		if call == 2 {
			return 0, errors.New("deadlock detected")
		}
		return len(chunk), nil
	})

	require.Equal(t, 150, inserted)
	require.Equal(t, []string{"batch 100: deadlock detected"}, errs)
}

func TestWriteBatches_EmptyInput(t *testing.T) {
	inserted, errs := writeBatches(context.Background(), []int{}, 100, func(_ context.Context, chunk []int) (int, error) {
		t.Fatal("write must not be called for empty input")
		return 0, nil
	})

	require.Zero(t, inserted)
	require.NotNil(t, errs)
	require.Empty(t, errs)
}
