// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSlugTaken is returned when an insert or update collides with an
// existing slug. Handlers translate it into a specific 409 message so the
// admin sees "slug already in use" rather than a generic failure.
var ErrSlugTaken = errors.New("slug already in use")

// ErrNotFound is returned by update/delete methods when no row matched.
var ErrNotFound = errors.New("not found")

// uniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
