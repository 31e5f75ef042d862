package diag

import "errors"

// ErrFatal is returned by Collector.Add, in Eager mode, when a Fatal
// diagnostic was just recorded. It signals the active resolution pass to
// unwind without attempting further passes over the same document.
var ErrFatal = errors.New("fatal diagnostic recorded")

// ErrUnknownLocale is returned when a caller requests a locale the bundle
// does not carry.
var ErrUnknownLocale = errors.New("unknown locale")
