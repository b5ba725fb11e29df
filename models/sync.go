// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRequest is one round of local changes sent to the authoritative store.
//
// LastSync is the client cursor: every authoritative change stamped at or
// before it has already been observed by the caller.
type SyncRequest struct {
	LastSync     time.Time
	ChangedNotes []Note
	DeletedUUIDs []string
}

// LocalUUIDs returns the union of uuids carried by the request. The caller
// already holds the authoritative version of these notes.
func (r SyncRequest) LocalUUIDs() []string {
	seen := make(map[string]struct{}, len(r.ChangedNotes)+len(r.DeletedUUIDs))
	uuids := make([]string, 0, len(r.ChangedNotes)+len(r.DeletedUUIDs))

	for _, n := range r.ChangedNotes {
		if _, ok := seen[n.UUID]; !ok {
			seen[n.UUID] = struct{}{}
			uuids = append(uuids, n.UUID)
		}
	}
	for _, u := range r.DeletedUUIDs {
		if _, ok := seen[u]; !ok {
			seen[u] = struct{}{}
			uuids = append(uuids, u)
		}
	}

	return uuids
}

// IsEmpty reports whether the request carries no local changes.
func (r SyncRequest) IsEmpty() bool {
	return len(r.ChangedNotes) == 0 && len(r.DeletedUUIDs) == 0
}

// SyncResponse carries the changes a caller has not yet seen together with
// the new cursor issued by the server for this round.
type SyncResponse struct {
	LastSync     time.Time
	ChangedNotes []Note
	DeletedUUIDs []string
}

// SyncOutcome describes how a sync attempt ended on the client.
type SyncOutcome int

const (
	// SyncCompleted means a round finished and was applied locally.
	SyncCompleted SyncOutcome = iota
	// SyncSkippedIneligible means the identity or network did not allow a round.
	SyncSkippedIneligible
	// SyncSkippedThrottled means the minimum interval has not elapsed.
	SyncSkippedThrottled
	// SyncSkippedNothingToDo means nothing was unsynced and no pull was wanted.
	SyncSkippedNothingToDo
	// SyncFailed means the round did not happen this time and is safe to retry.
	SyncFailed
)

// String returns a short label of the outcome.
func (o SyncOutcome) String() string {
	switch o {
	case SyncCompleted:
		return "completed"
	case SyncSkippedIneligible:
		return "skipped: ineligible"
	case SyncSkippedThrottled:
		return "skipped: throttled"
	case SyncSkippedNothingToDo:
		return "skipped: nothing to do"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncResult reports what a single PerformSync call did.
type SyncResult struct {
	Outcome SyncOutcome

	// Reason explains a skipped outcome.
	Reason string

	// Err holds the swallowed failure of a SyncFailed outcome.
	Err error

	Pushed        int
	PushedDeletes int
	Pulled        int
	PulledDeletes int

	// Cursor is the local cursor after the call.
	Cursor time.Time
}
