package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/models"
)

// videoRepository is the SQL implementation of [VideoRepository] over the
// "videos" table. Every statement filters on both id and user_id.
type videoRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (models.Video, error) {
	var v models.Video
	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Description)
	return v, err
}

// ListVideos returns the owner's videos in insertion order. The result is
// never nil.
func (r *videoRepository) ListVideos(ctx context.Context, ownerID int64) ([]models.Video, error) {
	log := logger.FromContext(ctx).With().Str("func", "*videoRepository.ListVideos").Int64("user_id", ownerID).Logger()

	query, args, err := r.db.listVideosQuery(ownerID)
	if err != nil {
		log.Err(err).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error querying videos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			log.Err(err).Msg("error scanning video row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Msg("error iterating video rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Debug().Int("count", len(videos)).Msg("videos listed")
	return videos, nil
}

// CreateVideo inserts video for video.UserID and returns the stored row.
// A missing owner maps to [ErrNoUserWasFound].
func (r *videoRepository) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx).With().Str("func", "*videoRepository.CreateVideo").Int64("user_id", video.UserID).Logger()

	query, args, err := r.db.createVideoQuery(video)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.Video{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Video
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var scanErr error
		created, scanErr = scanVideo(tx.QueryRowContext(ctx, query, args...))
		if scanErr == nil {
			return nil
		}

		if r.db.classify(scanErr) == ForeignKeyViolation {
			return ErrNoUserWasFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	})
	if err != nil {
		log.Err(err).Msg("error creating video")
		return models.Video{}, err
	}

	log.Debug().Int64("video_id", created.ID).Msg("video created")
	return created, nil
}

// GetVideo returns the video with id owned by ownerID or [ErrVideoNotFound].
func (r *videoRepository) GetVideo(ctx context.Context, id, ownerID int64) (models.Video, error) {
	log := logger.FromContext(ctx).With().Str("func", "*videoRepository.GetVideo").Int64("user_id", ownerID).Int64("video_id", id).Logger()

	video, err := r.getVideo(ctx, r.db, id, ownerID, false)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			log.Debug().Msg("video not found")
		} else {
			log.Err(err).Msg("error getting video")
		}
		return models.Video{}, err
	}

	return video, nil
}

// UpdateVideo locks the owned row, applies the provided fields and returns
// the result, all in one transaction. An empty update returns the stored
// record unchanged.
func (r *videoRepository) UpdateVideo(ctx context.Context, id, ownerID int64, update models.VideoUpdate) (models.Video, error) {
	log := logger.FromContext(ctx).With().Str("func", "*videoRepository.UpdateVideo").Int64("user_id", ownerID).Int64("video_id", id).Logger()

	var updated models.Video
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		current, err := r.getVideo(ctx, tx, id, ownerID, true)
		if err != nil {
			return err
		}

		if update.IsEmpty() {
			updated = current
			return nil
		}

		query, args, err := r.db.updateVideoQuery(id, ownerID, update)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		updated, err = scanVideo(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVideoNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			log.Debug().Msg("video not found")
		} else {
			log.Err(err).Msg("error updating video")
		}
		return models.Video{}, err
	}

	log.Debug().Msg("video updated")
	return updated, nil
}

// DeleteVideo removes the owned video or returns [ErrVideoNotFound].
func (r *videoRepository) DeleteVideo(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx).With().Str("func", "*videoRepository.DeleteVideo").Int64("user_id", ownerID).Int64("video_id", id).Logger()

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.getVideo(ctx, tx, id, ownerID, true); err != nil {
			return err
		}

		query, args, err := r.db.deleteVideoQuery(id, ownerID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrVideoNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			log.Debug().Msg("video not found")
		} else {
			log.Err(err).Msg("error deleting video")
		}
		return err
	}

	log.Debug().Msg("video deleted")
	return nil
}

// queryRower is satisfied by *DB, *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *videoRepository) getVideo(ctx context.Context, q queryRower, id, ownerID int64, lock bool) (models.Video, error) {
	query, args, err := r.db.getVideoQuery(id, ownerID, lock)
	if err != nil {
		return models.Video{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	video, err := scanVideo(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Video{}, ErrVideoNotFound
	}
	if err != nil {
		return models.Video{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return video, nil
}
