package repository

import (
	"context"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

// ListCandidates filters to bookable records only. Ordering is stable by id;
// callers must not read business meaning into it.
func (r *ResourceRepository) ListCandidates(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) ([]*resource.Resource, error) {
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

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate resources", err)
	}
	defer rows.Close()

	var result []*resource.Resource
	for rows.Next() {
		var (
			id, business uuid.UUID
			branch       pgtype.UUID
			rtypeStr     string
			statusStr    string
			isActive     bool
			attributes   map[string]string
		)
		if err := rows.Scan(&id, &business, &branch, &rtypeStr, &statusStr, &isActive, &attributes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource", err)
		}

		entity, err := reconstructResource(id, business, pgconv.UUIDPtrFromPgtype(branch), rtypeStr, statusStr, isActive, attributes)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resources", err)
	}

	return result, nil
}

func reconstructResource(id, businessID uuid.UUID, branchID *uuid.UUID, rtypeStr, statusStr string, isActive bool, attributes map[string]string) (*resource.Resource, error) {
	rtype, err := resource.NewType(rtypeStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid resource type in storage", err)
	}

	status, err := resource.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid resource status in storage", err)
	}

	entity, err := resource.NewResource(id, businessID, branchID, rtype, status, isActive, attributes)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid resource in storage", err)
	}

	return entity, nil
}
