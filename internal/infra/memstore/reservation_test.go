//go:build unit

package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end time.Time) booking.Interval {
	t.Helper()
	iv, err := booking.NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestReservationStore_Commit_Race(t *testing.T) {
	t.Run("同一資源への同時コミットは1件だけ成功する", func(t *testing.T) {
		store := NewReservationStore()
		resourceID := uuid.New()
		base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
		interval := mustInterval(t, base, base.Add(time.Hour))

		const attempts = 32
		var wg sync.WaitGroup
		results := make([]error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := store.Commit(context.Background(), resourceID, uuid.New(), interval)
				results[i] = err
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range results {
			if err == nil {
				wins++
				continue
			}
			assert.True(t, infra.IsKind(err, infra.KindConflict))
		}
		assert.Equal(t, 1, wins)
	})

	t.Run("接する区間は衝突しない", func(t *testing.T) {
		store := NewReservationStore()
		resourceID := uuid.New()
		base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

		_, err := store.Commit(context.Background(), resourceID, uuid.New(), mustInterval(t, base, base.Add(time.Hour)))
		require.NoError(t, err)

		_, err = store.Commit(context.Background(), resourceID, uuid.New(), mustInterval(t, base.Add(time.Hour), base.Add(2*time.Hour)))
		assert.NoError(t, err)
	})

	t.Run("別資源なら同一区間でも両方成功する", func(t *testing.T) {
		store := NewReservationStore()
		base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
		interval := mustInterval(t, base, base.Add(time.Hour))

		_, err := store.Commit(context.Background(), uuid.New(), uuid.New(), interval)
		require.NoError(t, err)
		_, err = store.Commit(context.Background(), uuid.New(), uuid.New(), interval)
		assert.NoError(t, err)
	})
}

func TestReservationStore_Cancel(t *testing.T) {
	t.Run("取消後は同じ区間を再予約できる", func(t *testing.T) {
		store := NewReservationStore()
		resourceID := uuid.New()
		base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
		interval := mustInterval(t, base, base.Add(time.Hour))

		res, err := store.Commit(context.Background(), resourceID, uuid.New(), interval)
		require.NoError(t, err)

		require.NoError(t, store.Cancel(context.Background(), res.ID()))

		free, err := store.IsFree(context.Background(), resourceID, interval)
		require.NoError(t, err)
		assert.True(t, free)

		_, err = store.Commit(context.Background(), resourceID, uuid.New(), interval)
		assert.NoError(t, err)

		// 取消済みの行は墓石として残る
		cancelled, err := store.Find(res.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
	})

	t.Run("取消済み予約の再取消はNOT_FOUND", func(t *testing.T) {
		store := NewReservationStore()
		base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

		res, err := store.Commit(context.Background(), uuid.New(), uuid.New(), mustInterval(t, base, base.Add(time.Hour)))
		require.NoError(t, err)
		require.NoError(t, store.Cancel(context.Background(), res.ID()))

		err = store.Cancel(context.Background(), res.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
