// Package field keeps a bounded grid of pawns and moves them in atomic batches
//
// Moves are scheduled first and applied together: a batch either lands whole or
// is rejected with a ConflictError, leaving grid and queue as they were. After
// each successful batch only the cells whose occupant changed are handed to the
// field's render.Renderer, so a terminal showing the field never repaints more
// than the move touched.
package field
