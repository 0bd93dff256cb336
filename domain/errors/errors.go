package errors

import "errors"

// Business-domain errors live here so every layer checks the same sentinels.

// ErrSectionNotFound is returned when a section record that must pre-exist
// is absent from the store.
var ErrSectionNotFound = errors.New("section not found in database")

// ErrUnknownSection is returned when a section id has no registered schema.
// The editor refuses to render a form for it rather than guessing a shape.
var ErrUnknownSection = errors.New("unknown section: no schema registered")

// ErrNotAList is returned when a list operation targets a path that is not
// a list field of the section's schema.
var ErrNotAList = errors.New("path does not address a list field")

// ErrSaveInFlight is returned when Save is called while a previous save on
// the same editor session has not finished. Saves are never queued.
var ErrSaveInFlight = errors.New("save already in flight")

// ErrSessionClosed is returned for any operation on a closed editor session.
var ErrSessionClosed = errors.New("editor session closed")

// ErrSessionNotFound is returned when an editor session id is unknown.
var ErrSessionNotFound = errors.New("editor session not found")
