package storage

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a partition has never been written.
var ErrNotFound = errors.New("partition not found")

// Storage is the durable client storage behind store persistence partitions.
// Each partition holds one opaque JSON blob: the partialized slice of a store's
// state that must survive a reload.
type Storage interface {
	Get(ctx context.Context, partition string) ([]byte, error)
	Put(ctx context.Context, partition string, blob []byte) error
	Delete(ctx context.Context, partition string) error
}
