// Package reputationconst contains errors of the Reputation contract that are
// used by both the contract itself and its tests.
package reputationconst

const (
	// ErrEntryNotFound is returned when there is no live rating between the
	// given rater and ratee.
	ErrEntryNotFound = "reputation entry not found"
	// ErrCommentTooLong is returned when a rating comment exceeds the
	// configured length limit.
	ErrCommentTooLong = "comment exceeds length limit"
	// ErrTagTooLong is returned when a rating tag exceeds the configured
	// length limit.
	ErrTagTooLong = "tag exceeds length limit"
	// ErrLengthMismatch is returned when batch argument arrays are of
	// different lengths.
	ErrLengthMismatch = "argument length mismatch"
	// ErrInsufficientBalance is returned when the caller's deposit does not
	// cover the rating fee or the requested withdrawal.
	ErrInsufficientBalance = "insufficient balance"
	// ErrTransferFailed is returned when an outward GAS transfer fails.
	ErrTransferFailed = "failed to transfer GAS, aborting"
)
