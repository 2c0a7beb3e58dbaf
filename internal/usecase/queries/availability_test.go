//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/resource"
	"booking-engine/internal/usecase/queries"
	"booking-engine/tests/common/builder"
	queriesmock "booking-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testInterval(t *testing.T) booking.Interval {
	t.Helper()
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	iv, err := booking.NewInterval(start, start.Add(time.Hour))
	require.NoError(t, err)
	return iv
}

func TestAvailabilityQueries_ListFreeResources(t *testing.T) {
	businessID := uuid.New()
	rtype := resource.TypeCourt

	t.Run("空き資源のみを候補順で返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resources := queriesmock.NewMockResourceReadStore(ctrl)
		reservations := queriesmock.NewMockReservationReadStore(ctrl)
		sut := queries.NewAvailabilityQueries(resources, reservations)

		first := builder.NewResourceBuilder().WithBusinessID(businessID).BuildReadModel()
		second := builder.NewResourceBuilder().WithBusinessID(businessID).BuildReadModel()
		third := builder.NewResourceBuilder().WithBusinessID(businessID).BuildReadModel()
		interval := testInterval(t)

		resources.EXPECT().ListCandidates(gomock.Any(), businessID, nil, rtype).
			Return([]*queries.ResourceView{first, second, third}, nil)
		reservations.EXPECT().FindAvailable(gomock.Any(), []uuid.UUID{first.ID, second.ID, third.ID}, interval).
			Return([]uuid.UUID{third.ID, first.ID}, nil)

		got, err := sut.ListFreeResources(context.Background(), businessID, nil, rtype, interval)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, third.ID, got[1].ID)
	})

	t.Run("候補が無ければ予約側を参照せず空を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resources := queriesmock.NewMockResourceReadStore(ctrl)
		reservations := queriesmock.NewMockReservationReadStore(ctrl)
		sut := queries.NewAvailabilityQueries(resources, reservations)

		resources.EXPECT().ListCandidates(gomock.Any(), businessID, nil, rtype).
			Return(nil, nil)

		got, err := sut.ListFreeResources(context.Background(), businessID, nil, rtype, testInterval(t))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("全資源が塞がっていれば空を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resources := queriesmock.NewMockResourceReadStore(ctrl)
		reservations := queriesmock.NewMockReservationReadStore(ctrl)
		sut := queries.NewAvailabilityQueries(resources, reservations)

		view := builder.NewResourceBuilder().WithBusinessID(businessID).BuildReadModel()
		interval := testInterval(t)

		resources.EXPECT().ListCandidates(gomock.Any(), businessID, nil, rtype).
			Return([]*queries.ResourceView{view}, nil)
		reservations.EXPECT().FindAvailable(gomock.Any(), []uuid.UUID{view.ID}, interval).
			Return([]uuid.UUID{}, nil)

		got, err := sut.ListFreeResources(context.Background(), businessID, nil, rtype, interval)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
