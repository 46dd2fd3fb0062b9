package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSchemaMismatch means the two headers do not hold the same column names.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrMissingKeyColumn means a key column is absent from at least one header.
	ErrMissingKeyColumn = errors.New("missing key column")

	// ErrNoKeyColumns means no key column was given.
	ErrNoKeyColumns = errors.New("no key columns")

	// ErrDuplicateColumn means a header names a column twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrColumnNotFound means the indexer was asked for a column the header lacks.
	// Validation makes this unreachable for the Compare pipeline.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRowWidth means a row does not have one cell per header column.
	ErrRowWidth = errors.New("row width differs from header")

	// ErrDuplicateKey means a key occurred twice while strict keys were requested.
	ErrDuplicateKey = errors.New("duplicate key")
)

// SchemaMismatchError carries the symmetric difference of two headers.
type SchemaMismatchError struct {
	// OnlyLeft holds columns present in dataset 1 only, sorted.
	OnlyLeft []string
	// OnlyRight holds columns present in dataset 2 only, sorted.
	OnlyRight []string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.OnlyLeft) > 0 {
		parts = append(parts, fmt.Sprintf("only in dataset 1: %s", strings.Join(e.OnlyLeft, ", ")))
	}
	if len(e.OnlyRight) > 0 {
		parts = append(parts, fmt.Sprintf("only in dataset 2: %s", strings.Join(e.OnlyRight, ", ")))
	}
	return fmt.Sprintf("%s: headers differ (%s)", ErrSchemaMismatch, strings.Join(parts, "; "))
}

func (e *SchemaMismatchError) Is(target error) bool { return target == ErrSchemaMismatch }

// MissingKeyColumnError names a key column and the datasets lacking it.
type MissingKeyColumnError struct {
	Column   string
	Datasets []int
}

func (e *MissingKeyColumnError) Error() string {
	which := make([]string, len(e.Datasets))
	for i, d := range e.Datasets {
		which[i] = fmt.Sprintf("dataset %d", d)
	}
	return fmt.Sprintf("%s: %q not found in %s", ErrMissingKeyColumn, e.Column, strings.Join(which, " and "))
}

func (e *MissingKeyColumnError) Is(target error) bool { return target == ErrMissingKeyColumn }

// ColumnNotFoundError names a column the indexer could not resolve.
type ColumnNotFoundError struct {
	Column  string
	Dataset string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q in %s", ErrColumnNotFound, e.Column, e.Dataset)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// DuplicateKeyError reports the first repeated key under strict keys.
type DuplicateKeyError struct {
	Dataset string
	Key     KeyTuple
	// Row is the 1-based data row (header excluded) holding the repeat.
	Row int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s repeated at row %d of %s", ErrDuplicateKey, e.Key, e.Row, e.Dataset)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }
