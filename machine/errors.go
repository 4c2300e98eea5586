package machine

import "errors"

// ErrInvalidConfiguration indicates that a Config cannot be assembled
// into a machine.  Construction errors from the component packages are
// wrapped under it, so callers can match either the aggregate or the
// underlying cause.
var ErrInvalidConfiguration = errors.New("invalid configuration")
