package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createConnectionRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE connection_requests (
		id TEXT PRIMARY KEY,
		from_wallet TEXT NOT NULL,
		to_wallet TEXT NOT NULL,
		event_id TEXT,
		is_global BOOLEAN NOT NULL DEFAULT 0,
		pair_key TEXT NOT NULL,
		scope_key TEXT NOT NULL,
		status TEXT NOT NULL,
		message TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		UNIQUE (pair_key, scope_key)
	);`)
}

func createPersonaTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE personas (
		id TEXT PRIMARY KEY,
		wallet_address TEXT NOT NULL,
		scope_key TEXT NOT NULL,
		event_id TEXT,
		display_name TEXT NOT NULL,
		bio TEXT,
		interests TEXT,
		looking_for TEXT,
		avatar_ipfs_hash TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME,
		UNIQUE (wallet_address, scope_key)
	);`)
}

func createEventTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		venue TEXT,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		organizer_wallet TEXT NOT NULL,
		contract_address TEXT,
		metadata_ipfs TEXT,
		ticket_supply INTEGER NOT NULL DEFAULT 0,
		ticket_price_wei TEXT NOT NULL DEFAULT '0',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
