// Package store is the access-scoping layer. Every query takes the
// caller's user ID as an explicit parameter and only ever touches rows
// that user owns; a row owned by someone else is indistinguishable from
// a row that does not exist.
package store

import "gorm.io/gorm"

// ErrNotFound is returned when a record is absent or owned by a
// different user. Callers must not be able to tell which.
var ErrNotFound = gorm.ErrRecordNotFound
