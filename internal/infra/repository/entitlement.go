package repository

import (
	"context"

	"booking-engine/internal/domain/entitlement"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type EntitlementRepository struct {
	pool *pgxpool.Pool
}

func NewEntitlementRepository(pool *pgxpool.Pool) *EntitlementRepository {
	return &EntitlementRepository{pool: pool}
}

// FindForService returns the customer's entitlements that cover the service:
// direct grants carry the service id on the row, package and membership
// coverage goes through the entitlement_services join table.
func (r *EntitlementRepository) FindForService(ctx context.Context, customerID, serviceID uuid.UUID) ([]*entitlement.Entitlement, error) {
	query, args, err := psql.
		Select("e.id", "e.customer_id", "e.source", "e.expires_at", "e.remaining_usage").
		From("entitlements e").
		Where(sq.Eq{"e.customer_id": customerID}).
		Where(sq.Or{
			sq.Eq{"e.service_id": serviceID},
			sq.Expr("e.id IN (SELECT entitlement_id FROM entitlement_services WHERE service_id = ?)", serviceID),
		}).
		OrderBy("e.id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build entitlement query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find entitlements", err)
	}
	defer rows.Close()

	var result []*entitlement.Entitlement
	for rows.Next() {
		var (
			id, customer   uuid.UUID
			source         string
			expiresAt      pgtype.Timestamptz
			remainingUsage int32
		)
		if err := rows.Scan(&id, &customer, &source, &expiresAt, &remainingUsage); err != nil {
			return nil, infra.WrapRepoErr("failed to scan entitlement", err)
		}

		src, err := entitlement.NewSource(source)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid entitlement source in storage", err)
		}

		ent, err := entitlement.NewEntitlement(id, customer, src, pgconv.TimePtrFromPgtype(expiresAt), remainingUsage)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid entitlement in storage", err)
		}
		result = append(result, ent)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate entitlements", err)
	}

	return result, nil
}

// Decrement consumes one unit. The remaining_usage > 0 guard makes the
// decrement safe under concurrent commits: the counter can never go
// negative, and unlimited entitlements (-1) are never touched.
func (r *EntitlementRepository) Decrement(ctx context.Context, entitlementID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE entitlements
		 SET remaining_usage = remaining_usage - 1, updated_at = now()
		 WHERE id = $1 AND remaining_usage > 0`,
		entitlementID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement entitlement", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("entitlement missing or out of remaining usage", nil, infra.KindConflict)
	}

	return nil
}
