package core

import "errors"

// Error taxonomy shared by every layer; callers match with errors.Is
var (
	// ErrInvalidDimension reports a non-positive width or height
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidArgument reports an absent reference, out-of-bounds coordinates or a bad symbol
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSwapConflict reports an unresolved destination collision at apply time
	ErrSwapConflict = errors.New("swap conflict")
	// ErrHandleNotOwned reports a handle that is stale or belongs to another owner
	ErrHandleNotOwned = errors.New("handle not owned")
)
