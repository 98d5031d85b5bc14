package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/models"
)

var videoRowColumns = []string{"id", "user_id", "name", "description"}

func newTestVideoRepo(t *testing.T) (VideoRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewVideoRepository(db, logger.Nop()), mock
}

func strPtr(s string) *string { return &s }

// ── ListVideos ───────────────────────────────────────────────────────────────

func TestListVideos_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos WHERE user_id = \\$1 ORDER BY id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).
			AddRow(int64(1), int64(1), "first", "d1").
			AddRow(int64(3), int64(1), "second", "d2"))

	videos, err := repo.ListVideos(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, videos, 2)
	assert.Equal(t, "first", videos[0].Name)
	assert.Equal(t, int64(3), videos[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVideos_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnRows(sqlmock.NewRows(videoRowColumns))

	videos, err := repo.ListVideos(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestListVideos_QueryError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnError(errors.New("boom"))

	_, err := repo.ListVideos(context.Background(), 1)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListVideos_ScanError(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := repo.ListVideos(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── CreateVideo ──────────────────────────────────────────────────────────────

func TestCreateVideo_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO videos").
		WithArgs(int64(5), "name", "description").
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(10), int64(5), "name", "description"))
	mock.ExpectCommit()

	created, err := repo.CreateVideo(context.Background(), models.Video{UserID: 5, Name: "name", Description: "description"})
	require.NoError(t, err)

	assert.Equal(t, models.Video{ID: 10, UserID: 5, Name: "name", Description: "description"}, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVideo_MissingOwner(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO videos").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreateVideo(context.Background(), models.Video{UserID: 99, Name: "n", Description: "d"})

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── GetVideo ─────────────────────────────────────────────────────────────────

func TestGetVideo_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "n", "d"))

	video, err := repo.GetVideo(context.Background(), 3, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), video.ID)
}

// TestGetVideo_OtherOwner verifies that a row filtered out by the owner
// predicate is reported as not found.
func TestGetVideo_OtherOwner(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM videos").
		WithArgs(int64(3), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVideo(context.Background(), 3, 2)

	assert.ErrorIs(t, err, ErrVideoNotFound)
}

// ── UpdateVideo ──────────────────────────────────────────────────────────────

func TestUpdateVideo_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos WHERE (.+) FOR UPDATE").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "old", "desc"))
	mock.ExpectQuery("UPDATE videos SET name = \\$1 WHERE").
		WithArgs("new", int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "new", "desc"))
	mock.ExpectCommit()

	updated, err := repo.UpdateVideo(context.Background(), 3, 1, models.VideoUpdate{Name: strPtr("new")})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, "desc", updated.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVideo_EmptyUpdateReturnsCurrent(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "old", "desc"))
	mock.ExpectCommit()

	updated, err := repo.UpdateVideo(context.Background(), 3, 1, models.VideoUpdate{})
	require.NoError(t, err)

	assert.Equal(t, models.Video{ID: 3, UserID: 1, Name: "old", Description: "desc"}, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVideo_NotFoundRollsBack(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.UpdateVideo(context.Background(), 3, 2, models.VideoUpdate{Name: strPtr("x")})

	assert.ErrorIs(t, err, ErrVideoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVideo_UpdateErrorRollsBack(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "old", "desc"))
	mock.ExpectQuery("UPDATE videos").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.UpdateVideo(context.Background(), 3, 1, models.VideoUpdate{Description: strPtr("x")})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── DeleteVideo ──────────────────────────────────────────────────────────────

func TestDeleteVideo_Success(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "n", "d"))
	mock.ExpectExec("DELETE FROM videos WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteVideo(context.Background(), 3, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVideo_NotFound(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.DeleteVideo(context.Background(), 3, 2)

	assert.ErrorIs(t, err, ErrVideoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVideo_NothingAffected(t *testing.T) {
	repo, mock := newTestVideoRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM videos").
		WillReturnRows(sqlmock.NewRows(videoRowColumns).AddRow(int64(3), int64(1), "n", "d"))
	mock.ExpectExec("DELETE FROM videos").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteVideo(context.Background(), 3, 1)

	assert.ErrorIs(t, err, ErrVideoNotFound)
}
