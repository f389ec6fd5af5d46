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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

var pinCounter atomic.Int64

// nextPIN hands out sequential six-digit PINs so parallel fixtures never
// collide on the unique pin column.
func nextPIN() string {
	return fmt.Sprintf("%06d", 100000+pinCounter.Add(1))
}

func CreateTestMember(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO members (id, email, display_name, password_hash, pin, role, is_active) VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING",
		memberID, email, strings.SplitN(email, "@", 2)[0], testPasswordHash, nextPIN(), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM members WHERE email = $1", email).Scan(&memberID)
	}

	return memberID
}

func CreateTestDrink(t *testing.T, db DBLike, name string, priceCents int32) uuid.UUID {
	t.Helper()

	drinkID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO drinks (id, name, price_cents, crate_price_cents, units_per_crate, low_stock_threshold, is_active) VALUES ($1, $2, $3, 2400, 20, 10, true) ON CONFLICT (name) DO NOTHING",
		drinkID, name, priceCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM drinks WHERE name = $1", name).Scan(&drinkID)
	}

	return drinkID
}

// CreateTestPurchase stocks a drink so consumption bookings have inventory
// to draw down in reports and low-stock checks.
func CreateTestPurchase(t *testing.T, db DBLike, drinkID uuid.UUID, crates float64, cratePriceCents int32) uuid.UUID {
	t.Helper()

	purchaseID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO purchases (id, drink_id, crates, crate_price_cents) VALUES ($1, $2, $3, $4)",
		purchaseID, drinkID, crates, cratePriceCents)
	require.NoError(t, err)

	return purchaseID
}

func SetFreePool(t *testing.T, db DBLike, quantity int32) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE free_pool SET quantity_remaining = $1, updated_at = now() WHERE id = 1", quantity)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// The singleton pool counter row; normally created by the migration,
	// recreated here after a TRUNCATE.
	_, err := pool.Exec(ctx, `
		INSERT INTO free_pool (id, quantity_remaining) VALUES (1, 0)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

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
