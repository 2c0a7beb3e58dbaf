package repository

import (
	"context"

	"booking-engine/internal/domain/payment"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/pgconv"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PricingRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

func (r *PricingRepository) FindByService(ctx context.Context, serviceID uuid.UUID) (*commands.ServicePricingSnapshot, error) {
	const query = `
		SELECT service_id, price, policy_kind, deposit_rate
		FROM service_pricing
		WHERE service_id = $1`

	var (
		id          uuid.UUID
		price       int64
		policyKind  string
		depositRate float64
	)
	err := r.pool.QueryRow(ctx, query, serviceID).Scan(&id, &price, &policyKind, &depositRate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service pricing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service pricing", err)
	}

	money, err := payment.NewMoney(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid service price in storage", err)
	}

	policy, err := payment.NewPolicy(payment.Kind(policyKind), depositRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment policy in storage", err)
	}

	return &commands.ServicePricingSnapshot{
		ServiceID: id,
		Price:     money,
		Policy:    policy,
	}, nil
}
