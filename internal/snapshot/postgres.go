package snapshot

import (
	"database/sql"
	"encoding/json"

	"github.com/sittikornl/marketplace-backend/internal/cart"
)

// PostgresStore keeps one row per owner key with the line list as JSONB.
// Derived aggregates are never stored; the engine recomputes them on load.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ownerKey string) ([]cart.Line, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT lines FROM carts WHERE "ownerKey" = $1`, ownerKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, cart.ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		// corrupt snapshot; the caller falls back to an empty cart
		return nil, err
	}
	return lines, nil
}

func (s *PostgresStore) Save(ownerKey string, lines []cart.Line) error {
	if lines == nil {
		lines = []cart.Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO carts ("ownerKey", lines, "updatedAt") VALUES ($1, $2, now())
        ON CONFLICT ("ownerKey") DO UPDATE SET lines = EXCLUDED.lines, "updatedAt" = now()`,
		ownerKey, raw)
	return err
}

func (s *PostgresStore) Delete(ownerKey string) error {
	_, err := s.db.Exec(`DELETE FROM carts WHERE "ownerKey" = $1`, ownerKey)
	return err
}
