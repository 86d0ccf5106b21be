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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestProduct(t *testing.T, db DBLike, name, price string, stock int) int64 {
	t.Helper()

	var id int64
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	err := db.QueryRow(context.Background(),
		"INSERT INTO products (name, brand, slug, volume_ml, price, stock) VALUES ($1, 'Test Brand', $2, 50, $3::numeric, $4) RETURNING id",
		name, slug, price, stock).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPromotion(t *testing.T, db DBLike, percent string, startsAt, endsAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO promotions (name, discount_percent, starts_at, ends_at) VALUES ('Test promotion', $1::numeric, $2, $3)",
		percent, startsAt, endsAt)
	require.NoError(t, err)
}

func ProductStock(t *testing.T, db DBLike, id int64) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", id).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func SetOrderSession(t *testing.T, db DBLike, orderID uuid.UUID, sessionID string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE orders SET payment_session_id = $2 WHERE id = $1", orderID, sessionID)
	require.NoError(t, err)
}

func OrderStatus(t *testing.T, db DBLike, orderID uuid.UUID) (status, hold string) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT status, fulfillment_hold FROM orders WHERE id = $1", orderID).Scan(&status, &hold)
	require.NoError(t, err)
	return status, hold
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except the migration bookkeeping
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
