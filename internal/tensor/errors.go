package tensor

import "errors"

// Common errors.
var (
	ErrShapeMismatch    = errors.New("tensor: incompatible shapes")
	ErrSizeUnderflow    = errors.New("tensor: initializer shorter than shape")
	ErrInvalidShape     = errors.New("tensor: invalid shape")
	ErrIndexOutOfRange  = errors.New("tensor: index out of range")
	ErrInvalidPrintRank = errors.New("tensor: printing requires a rank-2 tensor")
)
