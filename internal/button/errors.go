package button

import "errors"

// Setup failures are distinct so the caller can tell a missing device from a
// rejected configuration. None of them are retried here.
var (
	ErrNotReady  = errors.New("button device is not ready")
	ErrConfigure = errors.New("unable to configure button pin")
	ErrInterrupt = errors.New("unable to enable edge interrupts")
)
