package cart

import "errors"

// ErrNoSnapshot reports that no snapshot exists for the owner key.
var ErrNoSnapshot = errors.New("no cart snapshot")

// Store is a durable snapshot slot, keyed per cart owner. Only the line
// list is stored; the derived aggregates are recomputed on load.
// Implementations live in internal/snapshot.
type Store interface {
	Load(ownerKey string) ([]Line, error)
	Save(ownerKey string, lines []Line) error
	Delete(ownerKey string) error
}
