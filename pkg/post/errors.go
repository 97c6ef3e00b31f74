package post

import "errors"

var (
	// ErrUnknownKind is returned by the factory for a variant tag outside
	// {Text, Image, Sale}.
	ErrUnknownKind = errors.New("unknown post kind")

	// ErrAlreadySold is returned when discounting an item that was already
	// marked sold.
	ErrAlreadySold = errors.New("item already sold")
)
