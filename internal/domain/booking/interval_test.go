//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func mustInterval(t *testing.T, startOffset, endOffset time.Duration) booking.Interval {
	t.Helper()
	iv, err := booking.NewInterval(base.Add(startOffset), base.Add(endOffset))
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Run("正常な区間OK", func(t *testing.T) {
		iv, err := booking.NewInterval(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, iv.Start())
		assert.Equal(t, base.Add(time.Hour), iv.End())
		assert.Equal(t, time.Hour, iv.Duration())
	})

	t.Run("start == end はNG", func(t *testing.T) {
		_, err := booking.NewInterval(base, base)
		require.ErrorIs(t, err, errs.ErrInvalidInterval)
	})

	t.Run("start > end はNG", func(t *testing.T) {
		_, err := booking.NewInterval(base.Add(time.Hour), base)
		require.ErrorIs(t, err, errs.ErrInvalidInterval)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        [2]time.Duration
		b        [2]time.Duration
		expected bool
	}{
		{name: "完全一致は重なる", a: [2]time.Duration{0, time.Hour}, b: [2]time.Duration{0, time.Hour}, expected: true},
		{name: "部分的な重なり", a: [2]time.Duration{0, time.Hour}, b: [2]time.Duration{30 * time.Minute, 90 * time.Minute}, expected: true},
		{name: "包含は重なる", a: [2]time.Duration{0, 2 * time.Hour}, b: [2]time.Duration{30 * time.Minute, time.Hour}, expected: true},
		{name: "接するだけなら重ならない", a: [2]time.Duration{0, time.Hour}, b: [2]time.Duration{time.Hour, 2 * time.Hour}, expected: false},
		{name: "完全に離れている", a: [2]time.Duration{0, time.Hour}, b: [2]time.Duration{3 * time.Hour, 4 * time.Hour}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustInterval(t, tc.a[0], tc.a[1])
			b := mustInterval(t, tc.b[0], tc.b[1])

			assert.Equal(t, tc.expected, a.Overlaps(b))
			// 対称性: overlaps(a,b) == overlaps(b,a)
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	outer := mustInterval(t, 0, 2*time.Hour)

	t.Run("内包する区間", func(t *testing.T) {
		inner := mustInterval(t, 30*time.Minute, time.Hour)
		assert.True(t, outer.Contains(inner))
	})

	t.Run("自分自身を内包する", func(t *testing.T) {
		assert.True(t, outer.Contains(outer))
	})

	t.Run("はみ出す区間は内包しない", func(t *testing.T) {
		spill := mustInterval(t, time.Hour, 3*time.Hour)
		assert.False(t, outer.Contains(spill))
	})
}

func TestReservation_Blocks(t *testing.T) {
	iv := mustInterval(t, 0, time.Hour)
	overlapping := mustInterval(t, 30*time.Minute, 90*time.Minute)
	disjoint := mustInterval(t, 2*time.Hour, 3*time.Hour)

	res := booking.NewReservation(newUUID(t), newUUID(t), iv)

	assert.True(t, res.Blocks(overlapping))
	assert.False(t, res.Blocks(disjoint))

	require.NoError(t, res.Cancel())
	// キャンセル済み（tombstone）は空き判定をブロックしない
	assert.False(t, res.Blocks(overlapping))

	require.ErrorIs(t, res.Cancel(), booking.ErrAlreadyCancelled)
}
