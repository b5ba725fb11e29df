// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	saveLocalNote = `
		INSERT INTO notes (
			uuid,
			type,
			title,
			content,
			metadata,
			added,
			modified,
			status,
			synced,
			revision
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 1)
		ON CONFLICT (uuid) DO UPDATE SET
			type     = excluded.type,
			title    = excluded.title,
			content  = excluded.content,
			metadata = excluded.metadata,
			modified = excluded.modified,
			status   = excluded.status,
			synced   = 0,
			revision = notes.revision + 1
		RETURNING id, revision;`

	// upsertSyncedNote stores a pulled note. It neither overwrites a local
	// edit that is still waiting to be pushed nor resurrects a note whose
	// deletion is still pending.
	upsertSyncedNote = `
		INSERT INTO notes (
			uuid,
			type,
			title,
			content,
			metadata,
			added,
			modified,
			status,
			synced
		)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, 1
		WHERE NOT EXISTS (SELECT 1 FROM pending_deletions WHERE uuid = ?)
		ON CONFLICT (uuid) DO UPDATE SET
			type     = excluded.type,
			title    = excluded.title,
			content  = excluded.content,
			metadata = excluded.metadata,
			added    = excluded.added,
			modified = excluded.modified,
			status   = excluded.status,
			synced   = 1
		WHERE notes.synced = 1;`

	// markNoteSynced acknowledges a pushed note unless it was saved again
	// after it was read for the round.
	markNoteSynced = `UPDATE notes SET synced = 1 WHERE uuid = ? AND revision = ?;`

	selectLocalNotes = `
		SELECT
			id,
			uuid,
			type,
			title,
			content,
			metadata,
			added,
			modified,
			status,
			synced,
			revision
		FROM notes`

	getLocalNote = selectLocalNotes + `
		WHERE uuid = ?;`

	getAllLocalNotes = selectLocalNotes + `
		ORDER BY modified DESC, id DESC;`

	getUnsyncedLocalNotes = selectLocalNotes + `
		WHERE synced = 0
		ORDER BY id;`

	deleteLocalNote = `DELETE FROM notes WHERE uuid = ?;`

	forgetPendingDeletion = `DELETE FROM pending_deletions WHERE uuid = ?;`

	addPendingDeletion = `
		INSERT INTO pending_deletions (uuid, deleted) VALUES (?, ?)
		ON CONFLICT (uuid) DO UPDATE SET deleted = excluded.deleted;`

	getPendingDeletions = `SELECT uuid FROM pending_deletions ORDER BY deleted, uuid;`

	getCursor = `SELECT last_sync FROM sync_state WHERE id = 1;`

	getLastSuccess = `SELECT last_success FROM sync_state WHERE id = 1;`

	// advanceCursor never moves the cursor backwards. Cursors share one
	// fixed-width layout, so text order is time order.
	advanceCursor = `UPDATE sync_state SET last_sync = ? WHERE id = 1 AND last_sync < ?;`

	setLastSuccess = `UPDATE sync_state SET last_success = ? WHERE id = 1;`

	getSession = `SELECT user_id, login, token, verified FROM session WHERE id = 1;`

	saveSession = `
		INSERT INTO session (id, user_id, login, token, verified) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			login    = excluded.login,
			token    = excluded.token,
			verified = excluded.verified;`

	clearSession = `DELETE FROM session;`
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildDeleteLocalNotesQuery removes pulled deletions. A note with a local
// edit still waiting to be pushed is kept; the next round pushes it back.
func buildDeleteLocalNotesQuery(uuids []string) (string, []any, error) {
	return sqlite.Delete("notes").Where(sq.Eq{"uuid": uuids}).Where(sq.Eq{"synced": 1}).ToSql()
}

func buildDeletePendingDeletionsQuery(uuids []string) (string, []any, error) {
	return sqlite.Delete("pending_deletions").Where(sq.Eq{"uuid": uuids}).ToSql()
}
