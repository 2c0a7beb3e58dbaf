//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestResource(t *testing.T, db DBLike, businessID uuid.UUID, resourceType string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO resources (id, business_id, type, status, is_active) VALUES ($1, $2, $3, 'available', true)",
		resourceID, businessID, resourceType)
	require.NoError(t, err)

	return resourceID
}

func CreateTestReservation(t *testing.T, db DBLike, resourceID, appointmentID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO resource_reservations (id, resource_id, appointment_id, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5, $6)",
		reservationID, resourceID, appointmentID, start, end, status)
	require.NoError(t, err)

	return reservationID
}

func CreateTestPricing(t *testing.T, db DBLike, serviceID uuid.UUID, price int64, policyKind string, depositRate float64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO service_pricing (service_id, price, policy_kind, deposit_rate) VALUES ($1, $2, $3, $4) ON CONFLICT (service_id) DO NOTHING",
		serviceID, price, policyKind, depositRate)
	require.NoError(t, err)
}

// CreateTestEntitlement inserts a direct grant for the service. remainingUsage
// of -1 means unlimited.
func CreateTestEntitlement(t *testing.T, db DBLike, customerID, serviceID uuid.UUID, source string, expiresAt *time.Time, remainingUsage int) uuid.UUID {
	t.Helper()

	entitlementID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO entitlements (id, customer_id, source, service_id, expires_at, remaining_usage) VALUES ($1, $2, $3, $4, $5, $6)",
		entitlementID, customerID, source, serviceID, expiresAt, remainingUsage)
	require.NoError(t, err)

	return entitlementID
}

// CreateTestPackageEntitlement inserts a package grant whose service coverage
// goes through the entitlement_services join table.
func CreateTestPackageEntitlement(t *testing.T, db DBLike, customerID uuid.UUID, serviceIDs []uuid.UUID, expiresAt *time.Time, remainingUsage int) uuid.UUID {
	t.Helper()

	entitlementID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO entitlements (id, customer_id, source, expires_at, remaining_usage) VALUES ($1, $2, 'package', $3, $4)",
		entitlementID, customerID, expiresAt, remainingUsage)
	require.NoError(t, err)

	for _, serviceID := range serviceIDs {
		_, err := db.Exec(ctx,
			"INSERT INTO entitlement_services (entitlement_id, service_id) VALUES ($1, $2)",
			entitlementID, serviceID)
		require.NoError(t, err)
	}

	return entitlementID
}

// SeedReferenceData is a hook for reference rows shared across tests. The
// booking schema has no shared lookup tables, so it is currently a no-op.
func SeedReferenceData(pool *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
