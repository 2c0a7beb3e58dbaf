package repository

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The overlap predicate (start_time < $end AND end_time > $start) is the
// half-open interval contract of the booking domain; keep the SQL and
// Interval.Overlaps in lockstep.
const overlapCondition = `status = 'active' AND start_time < $3 AND end_time > $2`

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) IsFree(ctx context.Context, resourceID uuid.UUID, interval booking.Interval) (bool, error) {
	var busy bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM resource_reservations
			WHERE resource_id = $1 AND `+overlapCondition+`
		)`,
		resourceID, interval.Start(), interval.End(),
	).Scan(&busy)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check resource freeness", err)
	}

	return !busy, nil
}

func (r *ReservationRepository) FindAvailable(ctx context.Context, resourceIDs []uuid.UUID, interval booking.Interval) ([]uuid.UUID, error) {
	if len(resourceIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT c.id
		 FROM unnest($1::uuid[]) AS c(id)
		 WHERE NOT EXISTS (
			SELECT 1 FROM resource_reservations rr
			WHERE rr.resource_id = c.id AND rr.`+overlapCondition+`
		 )
		 ORDER BY c.id`,
		resourceIDs, interval.Start(), interval.End(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available resources", err)
	}
	defer rows.Close()

	free := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available resource id", err)
		}
		free = append(free, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available resources", err)
	}

	return free, nil
}

// Commit performs the check-then-insert atomically. A transaction-scoped
// advisory lock keyed by resource id serializes racing commits for the same
// resource; different resources commit fully in parallel. The freeness check
// runs again under the lock so a stale FindAvailable result can never produce
// a double booking.
func (r *ReservationRepository) Commit(ctx context.Context, resourceID, appointmentID uuid.UUID, interval booking.Interval) (*booking.Reservation, error) {
	return db.RunInTx(ctx, r.pool, func(tx pgx.Tx) (*booking.Reservation, error) {
		if _, err := tx.Exec(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`,
			resourceID,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to acquire resource lock", err)
		}

		var busy bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (
				SELECT 1 FROM resource_reservations
				WHERE resource_id = $1 AND `+overlapCondition+`
			)`,
			resourceID, interval.Start(), interval.End(),
		).Scan(&busy)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to re-check resource freeness", err)
		}
		if busy {
			return nil, infra.WrapRepoErr("resource already reserved for an overlapping interval", nil, infra.KindConflict)
		}

		reservation := booking.NewReservation(resourceID, appointmentID, interval)

		row := tx.QueryRow(ctx,
			`INSERT INTO resource_reservations (id, resource_id, appointment_id, start_time, end_time, status)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING created_at, updated_at`,
			reservation.ID(), resourceID, appointmentID,
			interval.Start(), interval.End(), reservation.Status().String(),
		)

		var createdAt, updatedAt pgtype.Timestamptz
		if err := row.Scan(&createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to insert reservation", err)
		}

		return booking.ReconstructReservation(
			reservation.ID(), resourceID, appointmentID,
			interval, reservation.Status(),
			pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
		), nil
	})
}

func (r *ReservationRepository) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE resource_reservations
		 SET status = 'cancelled', updated_at = now()
		 WHERE id = $1 AND status = 'active'`,
		reservationID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found or already cancelled", nil, infra.KindNotFound)
	}

	return nil
}
