//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/queries"
	queriesmock "booking-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEntitlementQueries_ListByCustomer(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	newView := func(expiresAt *time.Time, remaining int32) *queries.EntitlementView {
		return &queries.EntitlementView{
			ID:             uuid.New(),
			Source:         "package",
			ExpiresAt:      expiresAt,
			RemainingUsage: remaining,
		}
	}

	t.Run("有効性を現在時刻で判定して返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEntitlementReadStore(ctrl)
		sut := queries.NewEntitlementQueries(store, clock.NewMockClock(now))

		future := now.Add(24 * time.Hour)
		past := now.Add(-time.Hour)
		views := []*queries.EntitlementView{
			newView(&future, 3), // valid
			newView(&past, 3),   // expired
			newView(nil, 0),     // depleted
			newView(nil, -1),    // unlimited, no expiry
		}

		store.EXPECT().FindByCustomer(gomock.Any(), customerID).Return(views, nil)

		got, err := sut.ListByCustomer(context.Background(), customerID)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.True(t, got[0].IsValid)
		assert.False(t, got[1].IsValid)
		assert.False(t, got[2].IsValid)
		assert.True(t, got[3].IsValid)
	})

	t.Run("何も持たない顧客は空リスト", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEntitlementReadStore(ctrl)
		sut := queries.NewEntitlementQueries(store, clock.NewMockClock(now))

		store.EXPECT().FindByCustomer(gomock.Any(), customerID).Return(nil, nil)

		got, err := sut.ListByCustomer(context.Background(), customerID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
