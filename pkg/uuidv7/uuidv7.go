// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package uuidv7 provides time-ordered unique identifiers for the platform.

It wraps the standard UUID library to specifically generate Version 7 values,
which are optimized for database performance.

Advantages:

  - Sortable: Naturally ordered by creation time (millisecond precision).
  - Friendly: Prevents index fragmentation in PostgreSQL (B-tree optimal).
  - Compact: 128-bit storage, compatible with standard 'uuid' types.

This is the mandatory ID type for all primary keys in the Marquee catalog.
*/
package uuidv7

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
//
// It panics if the OS entropy source fails, which is an unrecoverable
// system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// IsValid reports whether s parses as any UUID version. Handlers use it to
// reject malformed path parameters before touching the database.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
