package window

import "errors"

// ErrUnknownWindow is returned by [Parse] for names that are not registered.
var ErrUnknownWindow = errors.New("unknown window")
