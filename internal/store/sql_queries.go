package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name, verified) 
    VALUES ($1, $2, $3, $4) 
    RETURNING user_id, login, password_hash, name, verified, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, verified, created_at 
    FROM users 
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, name, verified, created_at 
    FROM users 
    WHERE user_id = $1;`

	// stampRound locks the sync clock row of a user for the rest of the
	// transaction and returns a stamp strictly greater than the previous one.
	stampRound = `INSERT INTO sync_clock (user_id, last_sync)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET last_sync = GREATEST(sync_clock.last_sync + interval '1 millisecond', EXCLUDED.last_sync)
		RETURNING last_sync;`
)

const (
	upsertNotesSuffix = `ON CONFLICT (user_id, uuid) DO UPDATE SET 
		type = EXCLUDED.type, 
		title = EXCLUDED.title, 
		content = EXCLUDED.content, 
		metadata = EXCLUDED.metadata, 
		added = EXCLUDED.added, 
		modified = EXCLUDED.modified, 
		status = EXCLUDED.status, 
		synced = EXCLUDED.synced`

	upsertTombstonesSuffix = `ON CONFLICT (user_id, uuid) DO UPDATE SET deleted = EXCLUDED.deleted`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// writeBatchSize bounds the rows of one multi-row INSERT, keeping a statement
// well under the 65535 bind parameters PostgreSQL accepts.
const writeBatchSize = 1000

var noteColumns = []string{"user_id", "uuid", "type", "title", "content", "metadata", "added", "modified", "status", "synced"}

// buildUpsertNotesQuery writes notes stamped with syncTime in one multi-row
// INSERT. Callers pass at most writeBatchSize notes.
func buildUpsertNotesQuery(userID int64, syncTime time.Time, notes []models.RemoteNote) (string, []any, error) {
	builder := psql.Insert("notes").Columns(noteColumns...)
	for _, n := range notes {
		builder = builder.Values(userID, n.UUID, int(n.Type), n.Title, n.Content, n.Metadata, n.Added, n.Modified, int(n.Status), syncTime)
	}

	return builder.Suffix(upsertNotesSuffix).ToSql()
}

// uuid lists travel as a single text[] parameter, whatever their length.

func buildDeleteTombstonesQuery(userID int64, uuids []string) (string, []any, error) {
	return psql.Delete("tombstones").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("uuid = ANY(?)", nonNil(uuids))).
		ToSql()
}

func buildDeleteNotesQuery(userID int64, uuids []string) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr("uuid = ANY(?)", nonNil(uuids))).
		ToSql()
}

// buildUpsertTombstonesQuery takes at most writeBatchSize uuids.
func buildUpsertTombstonesQuery(userID int64, deletedAt time.Time, uuids []string) (string, []any, error) {
	builder := psql.Insert("tombstones").Columns("user_id", "uuid", "deleted")
	for _, u := range uuids {
		builder = builder.Values(userID, u, deletedAt)
	}

	return builder.Suffix(upsertTombstonesSuffix).ToSql()
}

// buildChangedNotesQuery selects the live notes of a user stamped strictly
// after since. An empty exclude list matches every uuid.
func buildChangedNotesQuery(userID int64, since time.Time, exclude []string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"synced": since}).
		Where(sq.Expr("uuid <> ALL(?)", nonNil(exclude))).
		OrderBy("synced", "uuid").
		ToSql()
}

// buildTombstonesQuery selects the tombstones of a user stamped strictly
// after since. An empty exclude list matches every uuid.
func buildTombstonesQuery(userID int64, since time.Time, exclude []string) (string, []any, error) {
	return psql.Select("user_id", "uuid", "deleted").
		From("tombstones").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"deleted": since}).
		Where(sq.Expr("uuid <> ALL(?)", nonNil(exclude))).
		OrderBy("deleted", "uuid").
		ToSql()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
