package apperrors

import "errors"

// ErrNotFound indicates that a requested entity could not be found in the Document.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSystemPage indicates an attempt to delete a system page. System pages
// carry a fixed id and slug and can only be toggled active/inactive.
var ErrSystemPage = errors.New("system pages cannot be deleted")

// ErrLocalPersist indicates that writing the Document to the durable local
// cache failed. This is the one fatal mutation outcome: the in-memory change
// has no durability at all and is lost on restart.
var ErrLocalPersist = errors.New("local persist failed")

// ErrRemoteUnavailable indicates the remote document store could not be
// reached or returned a non-success response. Mutations recover from this
// locally; it surfaces only as a "saved locally" qualifier, never as a
// mutation failure.
var ErrRemoteUnavailable = errors.New("remote document store unavailable")
