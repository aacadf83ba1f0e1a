package draftengine

import "errors"

// Sentinel errors surfaced by the setup and persistence operations of
// spec.md S6/S7. Setup is transactional from the caller's perspective: a
// rejected call leaves the engine's prior configuration untouched. RunSearch
// does not track rejected calls; it refuses only an engine on which SetSizes
// has never succeeded.
var (
	// ErrOutOfRange is returned when a hero or stage index named by a setup
	// call falls outside the bounds a prior SetSizes call established, when
	// SetSizes is given a hero count outside (0, MaxHeroes], and by RunSearch
	// when the starting selections reach past the end of the schedule.
	ErrOutOfRange = errors.New("draftengine: index out of range")

	// ErrScheduleTooLong is returned when the accumulated draft schedule
	// exceeds schedule.MaxDraftLen selection slots.
	ErrScheduleTooLong = errors.New("draftengine: schedule exceeds MaxDraftLen")

	// ErrTermSlotOutOfRange is returned when a synergy or counter slot
	// index falls outside the bound SetSizes established for it.
	ErrTermSlotOutOfRange = errors.New("draftengine: reward term slot out of range")

	// ErrPersistenceIO is returned when SaveTT/LoadTT fail to transfer
	// the full expected byte count, per spec.md S6's persistence contract.
	// The core does not retry.
	ErrPersistenceIO = errors.New("draftengine: persistence I/O failure")

	// ErrNotConfigured is returned by RunSearch when SetSizes has not yet
	// been called.
	ErrNotConfigured = errors.New("draftengine: engine not configured")
)
