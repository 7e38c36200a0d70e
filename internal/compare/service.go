package compare

import "errors"

var ErrInvalidInput = errors.New("invalid owner or product id")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ownerKey string, productID int) ([]int, error) {
	if ownerKey == "" || productID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Add(ownerKey, productID)
}

func (s *Service) Remove(ownerKey string, productID int) ([]int, error) {
	if ownerKey == "" || productID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Remove(ownerKey, productID)
}

func (s *Service) List(ownerKey string) ([]int, error) {
	if ownerKey == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ownerKey)
}

func (s *Service) Clear(ownerKey string) error {
	if ownerKey == "" {
		return ErrInvalidInput
	}
	return s.repo.Clear(ownerKey)
}
