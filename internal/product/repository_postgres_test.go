package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"productId", "productName", "productPrice", "productImage", "vendor", "vendorId", "delivery", "stock", "createdAt", "updatedAt"})
}

func TestListByIDsPreservesOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow(7, "Towel", 30.0, "", "V2", "vend-2", "3-5 days", 0, "t", "u").
		AddRow(3, "Soap", 100.0, "", "V1", "vend-1", "1-2 days", 5, "t", "u")
	mock.ExpectQuery("array_position").WithArgs(pq.Array([]int{7, 3})).WillReturnRows(rows)

	products, err := repo.ListByIDs([]int{7, 3})
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != 7 || products[1].ID != 3 {
		t.Fatalf("order not preserved: %d, %d", products[0].ID, products[1].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByIDsEmptySkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	products, err := repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty result, got %d", len(products))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected query executed: %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").WithArgs(99).WillReturnRows(productRows())

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Soap", 100.0, "", "V1", "vend-1", "1-2 days", 5, "t", "t").
		WillReturnRows(sqlmock.NewRows([]string{"productId"}).AddRow(11))

	created, err := repo.Create(Product{Name: "Soap", Price: 100, Vendor: "V1", VendorID: "vend-1", Delivery: "1-2 days", Stock: 5, CreatedAt: "t", UpdatedAt: "t"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("expected id 11, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
