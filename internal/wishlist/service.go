package wishlist

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid user or product id")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(userID int, productID int) ([]int, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Add(userID, productID, now())
}

func (s *Service) Remove(userID int, productID int) ([]int, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Remove(userID, productID, now())
}

func (s *Service) List(userID int) ([]int, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.List(userID)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
