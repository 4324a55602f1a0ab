package ddog

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion matches any UnsupportedVersionError via errors.Is.
var ErrUnsupportedVersion = errors.New("unsupported api version")

// UnsupportedVersionError reports an attempt to construct a route under an
// api version that does not serve that endpoint.
type UnsupportedVersionError struct {
	Version ApiVersion
	Route   string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s route is not available under api version %s", e.Route, e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}
