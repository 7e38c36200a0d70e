package product

import (
	"errors"
	"time"
)

var ErrNotOwner = errors.New("product belongs to another vendor")

// Service orchestrates catalog reads for the storefront and catalog writes
// for the vendor portal.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) ListByVendor(vendorID string) []Product {
	return s.repo.ListByVendor(vendorID)
}

func (s *Service) GetByID(id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) Create(vendorID string, p Product) (Product, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	p.VendorID = vendorID
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

// Update rewrites a product after checking it belongs to the calling vendor.
func (s *Service) Update(vendorID string, id int, p Product) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if existing.VendorID != vendorID {
		return Product{}, ErrNotOwner
	}
	p.Vendor = existing.Vendor
	p.VendorID = existing.VendorID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(vendorID string, id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.VendorID != vendorID {
		return ErrNotOwner
	}
	return s.repo.Delete(id)
}
