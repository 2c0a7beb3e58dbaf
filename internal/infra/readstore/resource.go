package readstore

import (
	"context"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ResourceReadStore struct {
	pool *pgxpool.Pool
}

func NewResourceReadStore(pool *pgxpool.Pool) *ResourceReadStore {
	return &ResourceReadStore{pool: pool}
}

func (s *ResourceReadStore) ListCandidates(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) ([]*queries.ResourceView, error) {
	builder := psql.
		Select("id", "business_id", "branch_id", "type", "status", "is_active", "attributes").
		From("resources").
		Where(sq.Eq{"business_id": businessID}).
		Where(sq.Eq{"type": rtype.String()}).
		Where(sq.Eq{"is_active": true}).
		Where(sq.NotEq{"status": []string{
			resource.StatusMaintenance.String(),
			resource.StatusOutOfOrder.String(),
		}}).
		OrderBy("id")

	if branchID != nil {
		builder = builder.Where(sq.Eq{"branch_id": *branchID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build resource query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate resources", err)
	}
	defer rows.Close()

	var views []*queries.ResourceView
	for rows.Next() {
		var (
			v      queries.ResourceView
			branch pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.BusinessID, &branch, &v.Type, &v.Status, &v.IsActive, &v.Attributes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource", err)
		}
		v.BranchID = pgconv.UUIDPtrFromPgtype(branch)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resources", err)
	}

	return views, nil
}
