package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/video-blog/models"
)

var (
	userTable  = models.User{}.TableName()
	videoTable = models.Video{}.TableName()

	userColumns  = []string{"id", "name", "email", "password_hash"}
	videoColumns = []string{"id", "user_id", "name", "description"}
)

const (
	returningUser  = "RETURNING id, name, email, password_hash"
	returningVideo = "RETURNING id, user_id, name, description"
)

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(userTable).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix(returningUser).
		ToSql()
}

func (db *DB) findUserByEmailQuery(email string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func (db *DB) listVideosQuery(ownerID int64) (string, []any, error) {
	return db.builder.
		Select(videoColumns...).
		From(videoTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id").
		ToSql()
}

func (db *DB) createVideoQuery(video models.Video) (string, []any, error) {
	return db.builder.
		Insert(videoTable).
		Columns("user_id", "name", "description").
		Values(video.UserID, video.Name, video.Description).
		Suffix(returningVideo).
		ToSql()
}

// getVideoQuery selects one owned video. With lock set the row is locked
// for the rest of the transaction where the dialect supports it.
func (db *DB) getVideoQuery(id, ownerID int64, lock bool) (string, []any, error) {
	query := db.builder.
		Select(videoColumns...).
		From(videoTable).
		Where(sq.Eq{"id": id, "user_id": ownerID})

	if lock && db.supportsRowLocks() {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

// updateVideoQuery sets only the fields present in update.
// The caller must not pass an empty update.
func (db *DB) updateVideoQuery(id, ownerID int64, update models.VideoUpdate) (string, []any, error) {
	query := db.builder.Update(videoTable)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}

	return query.
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returningVideo).
		ToSql()
}

func (db *DB) deleteVideoQuery(id, ownerID int64) (string, []any, error) {
	return db.builder.
		Delete(videoTable).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
}
