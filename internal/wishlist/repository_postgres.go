package wishlist

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresRepository keeps one row per user with the product ids as an
// integer array.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID int, productID int, updatedAt string) ([]int, error) {
	ids, err := r.List(userID)
	if err != nil {
		return nil, err
	}
	for _, pid := range ids {
		if pid == productID {
			return nil, ErrAlreadyInWishlist
		}
	}
	ids = append(ids, productID)
	if err := r.write(userID, ids, updatedAt); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) Remove(userID int, productID int, updatedAt string) ([]int, error) {
	ids, err := r.List(userID)
	if err != nil {
		return nil, err
	}
	next := make([]int, 0, len(ids))
	found := false
	for _, pid := range ids {
		if pid == productID {
			found = true
			continue
		}
		next = append(next, pid)
	}
	if !found {
		return nil, ErrNotInWishlist
	}
	if err := r.write(userID, next, updatedAt); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *PostgresRepository) List(userID int) ([]int, error) {
	var ids pq.Int64Array
	err := r.db.QueryRow(`SELECT "productIds" FROM wishlist WHERE "userId" = $1`, userID).Scan(&ids)
	if err == sql.ErrNoRows {
		return []int{}, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, int(id))
	}
	return out, nil
}

func (r *PostgresRepository) write(userID int, ids []int, updatedAt string) error {
	arr := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, int64(id))
	}
	_, err := r.db.Exec(`INSERT INTO wishlist ("userId", "productIds", "updatedAt") VALUES ($1, $2, $3)
        ON CONFLICT ("userId") DO UPDATE SET "productIds" = EXCLUDED."productIds", "updatedAt" = EXCLUDED."updatedAt"`,
		userID, arr, updatedAt)
	return err
}
