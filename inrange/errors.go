package inrange

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrTypeMismatch is returned if values of different types are compared with each other.
	ErrTypeMismatch = ierrors.New("type mismatch")

	// ErrUnsupportedType is returned if a value has no natural order that a Dynamic range could use.
	ErrUnsupportedType = ierrors.New("unsupported type")
)
