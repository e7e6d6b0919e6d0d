package fund

import "context"

type Repository interface {
	// FetchOrCreate returns the singleton settings row, seeding it with
	// NewDefaultSettings when none exists yet.
	FetchOrCreate(ctx context.Context) (*Settings, error)
	// FetchForUpdate locks the singleton row for a read-modify-write.
	FetchForUpdate(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
