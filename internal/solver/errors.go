package solver

import "errors"

var (
	// ErrInvalidInput indicates a word that is not exactly five letters a–z,
	// or a mask outside [0,242].
	ErrInvalidInput = errors.New("solver: invalid input")
	// ErrInvalidState indicates an empty pool or an empty allowed-guess list,
	// for which no best guess exists.
	ErrInvalidState = errors.New("solver: invalid state")
)
