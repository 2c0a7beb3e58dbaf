package readstore

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EntitlementReadStore struct {
	pool *pgxpool.Pool
}

func NewEntitlementReadStore(pool *pgxpool.Pool) *EntitlementReadStore {
	return &EntitlementReadStore{pool: pool}
}

// FindByCustomer returns every grant the customer holds, including expired and
// depleted ones. Validity is computed on the query side against the current
// clock, not persisted.
func (s *EntitlementReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.EntitlementView, error) {
	const query = `
		SELECT id, source, service_id, expires_at, remaining_usage
		FROM entitlements
		WHERE customer_id = $1
		ORDER BY id`

	rows, err := s.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entitlements", err)
	}
	defer rows.Close()

	var views []*queries.EntitlementView
	for rows.Next() {
		var (
			v         queries.EntitlementView
			serviceID pgtype.UUID
			expiresAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Source, &serviceID, &expiresAt, &v.RemainingUsage); err != nil {
			return nil, infra.WrapRepoErr("failed to scan entitlement", err)
		}
		v.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
		v.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate entitlements", err)
	}

	return views, nil
}
