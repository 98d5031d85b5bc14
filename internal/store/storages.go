// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/video-blog/internal/config"
	"github.com/MKhiriev/video-blog/internal/logger"
)

// Storages groups the repositories handed to the service layer together
// with the connection they share.
type Storages struct {
	UserRepository  UserRepository
	VideoRepository VideoRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. opens a connection for cfg.DB.Driver and pings it;
//  2. applies pending schema migrations;
//  3. builds the repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		VideoRepository: NewVideoRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
