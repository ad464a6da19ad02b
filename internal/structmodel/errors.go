package structmodel

import "errors"

// ErrFrameMissing is returned when an Anchor references a world frame id
// absent from the supplied frame table.
var ErrFrameMissing = errors.New("structmodel: referenced world frame missing")
