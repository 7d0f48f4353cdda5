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

// GeneratorAddOnID is seeded by SeedReferenceData.
var GeneratorAddOnID = uuid.MustParse("6f1c0a5e-0000-4000-8000-000000000001")

func InsertAddOn(t *testing.T, db DBLike, name string, priceCents int64, maxQuantity int, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO add_ons (id, name, category, price_per_unit_cents, max_quantity, is_active) VALUES ($1, $2, 'extras', $3, $4, $5)",
		id, name, priceCents, maxQuantity, active)
	require.NoError(t, err)
	return id
}

// InsertPercentPromo creates an active percentage promo code. A nil maxUses is unlimited.
func InsertPercentPromo(t *testing.T, db DBLike, code string, percentOff float64, maxUses *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO promo_codes (id, code, percent_off, max_uses) VALUES ($1, $2, $3, $4)",
		id, code, percentOff, maxUses)
	require.NoError(t, err)
	return id
}

func PromoUsesCount(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT uses_count FROM promo_codes WHERE code = $1", code).Scan(&n)
	require.NoError(t, err)
	return n
}

func BookingStatus(t *testing.T, db DBLike, id uuid.UUID) (status, paymentStatus string) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT status, payment_status FROM bookings WHERE id = $1", id).
		Scan(&status, &paymentStatus)
	require.NoError(t, err)
	return status, paymentStatus
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the add-on catalog tests rely on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO add_ons (id, name, category, price_per_unit_cents, max_quantity, is_active) VALUES
		    ($1, 'Generator', 'power', 1500, 2, true)
		ON CONFLICT (id) DO NOTHING;
	`, GeneratorAddOnID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
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
