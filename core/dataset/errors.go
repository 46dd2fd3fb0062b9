package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable means the dataset location could not be opened or parsed.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrUnsupportedSource means the location scheme has no configured backend.
	ErrUnsupportedSource = errors.New("unsupported source")
)

// SourceError describes a failure to load a dataset from a location.
type SourceError struct {
	Location string
	Err      error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSourceUnreadable, e.Location, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is makes every SourceError match ErrSourceUnreadable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnreadable
}

func unreadable(location string, err error) error {
	return &SourceError{Location: location, Err: err}
}
