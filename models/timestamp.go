// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// CursorLayout is the wire layout of a sync cursor: ISO-8601 with exactly
// three fractional digits, always in UTC.
const CursorLayout = "2006-01-02T15:04:05.000Z"

var cursorPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

// ErrMalformedTimestamp is returned when a wire timestamp cannot be parsed.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ZeroCursor is the cursor of a store that has never synced.
var ZeroCursor = time.Unix(0, 0).UTC()

// FormatTimestamp renders t in CursorLayout. Sub-millisecond precision is
// truncated, never rounded.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format(CursorLayout)
}

// ParseCursor parses a cursor in the strict CursorLayout form.
func ParseCursor(s string) (time.Time, error) {
	if !cursorPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q is not a millisecond UTC timestamp", ErrMalformedTimestamp, s)
	}

	t, err := time.Parse(CursorLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedTimestamp, err)
	}

	return t.UTC(), nil
}

// ParseTimestamp parses a note timestamp (added, modified). Any RFC 3339
// form is accepted and the result is normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedTimestamp, err)
	}

	return t.UTC(), nil
}

// TruncateStamp normalizes a server stamp to the precision the cursor can
// carry, so strict comparisons against a parsed cursor stay exact.
func TruncateStamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
