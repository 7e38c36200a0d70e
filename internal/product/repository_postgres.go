package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `"productId", "productName", "productPrice", "productImage", vendor, "vendorId", delivery, stock, "createdAt", "updatedAt"`

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY "productId"`)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListByIDs returns the products matching ids, ordered the same way as the
// ids argument. An empty slice leads to an immediate empty result.
func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(`SELECT `+productColumns+`
        FROM products
        WHERE "productId" = ANY($1::int[])
        ORDER BY array_position($1::int[], "productId")`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows), nil
}

func (r *PostgresRepository) ListByVendor(vendorID string) []Product {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products WHERE "vendorId" = $1 ORDER BY "productId"`, vendorID)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE "productId" = $1`, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Image, &p.Vendor, &p.VendorID, &p.Delivery, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO products ("productName", "productPrice", "productImage", vendor, "vendorId", delivery, stock, "createdAt", "updatedAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING "productId"`,
		p.Name, p.Price, p.Image, p.Vendor, p.VendorID, p.Delivery, p.Stock, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(`UPDATE products SET "productName" = $1, "productPrice" = $2, "productImage" = $3, delivery = $4, stock = $5, "updatedAt" = $6
        WHERE "productId" = $7`,
		p.Name, p.Price, p.Image, p.Delivery, p.Stock, p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE "productId" = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func collectProducts(rows *sql.Rows) []Product {
	out := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Vendor, &p.VendorID, &p.Delivery, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}
