package metriccollector

import (
	"context"

	"github.com/devpospicha/pulse/internal/model"
)

// Collector is the interface that all provider collectors must implement.
// Collect fills its part of the snapshot.
type Collector interface {
	Name() string
	Collect(ctx context.Context, snap *model.Snapshot) error
}
