package session

import "errors"

var (
	// ErrSessionNotFound indicates no stored record exists for an identifier
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrStoreUnavailable indicates the backing store could not be reached
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrIDGeneration indicates identifier generation failed
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrNoStore indicates no store is configured
	ErrNoStore = errors.New("session.no_store")
)
