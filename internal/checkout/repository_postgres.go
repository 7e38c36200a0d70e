package checkout

import (
	"database/sql"
	"encoding/json"

	"github.com/sittikornl/marketplace-backend/internal/cart"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	linesJSON, err := json.Marshal(ord.Lines)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders ("ownerKey", lines, subtotal, "itemCount", status, "createdAt", "updatedAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING "orderID"`,
		ord.OwnerKey, linesJSON, ord.Subtotal, ord.ItemCount, ord.Status, ord.CreatedAt, ord.UpdatedAt).Scan(&ord.OrderID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByOwner(ownerKey string) ([]Order, error) {
	rows, err := r.db.Query(`SELECT "orderID", "ownerKey", lines, subtotal, "itemCount", status, "createdAt", "updatedAt"
        FROM orders
        WHERE "ownerKey" = $1
        ORDER BY "orderID" DESC`, ownerKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		var linesJSON []byte
		if err := rows.Scan(&ord.OrderID, &ord.OwnerKey, &linesJSON, &ord.Subtotal, &ord.ItemCount, &ord.Status, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(linesJSON, &ord.Lines); err != nil {
			ord.Lines = []cart.Line{}
		}
		orders = append(orders, ord)
	}
	return orders, nil
}
