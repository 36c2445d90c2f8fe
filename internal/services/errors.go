package services

import (
	"errors"
	"fmt"
)

// ErrInvalid marks business-rule validation failures so handlers can map
// them to 422 without string matching.
var ErrInvalid = errors.New("invalid request")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...)
}
