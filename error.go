package btset

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDegree = errors.New("degree must be at least 2")
	ErrNilCompare    = errors.New("compare function cannot be nil")
	ErrKeyNotFound   = errors.New("key not found")
	ErrCorruption    = errors.New("tree corruption detected")
)

// corruptionf builds a structural-check error that wraps ErrCorruption.
func corruptionf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrCorruption)...)
}
