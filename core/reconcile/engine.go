package reconcile

import (
	"context"

	"tablediff/core/dataset"

	"golang.org/x/sync/errgroup"
)

// Options controls a Compare run.
type Options struct {
	// StrictKeys fails on a repeated primary key instead of keeping the last row.
	StrictKeys bool

	// Sequential indexes the datasets one after the other instead of concurrently.
	Sequential bool
}

// Diff compares two keyed maps. Keys of left are classified first (only in
// left, or shared and compared by value); keys of right unseen in left follow.
// Each key is looked up once, so the cost is O(|left| + |right|).
func Diff(left, right *KeyedMap) *DiffResult {
	result := &DiffResult{
		OnlyLeft:   []KeyTuple{},
		OnlyRight:  []KeyTuple{},
		Mismatches: []Mismatch{},
	}

	left.Range(func(key KeyTuple, lv ValueTuple) bool {
		rv, ok := right.Get(key)
		switch {
		case !ok:
			result.OnlyLeft = append(result.OnlyLeft, key)
		case !lv.Equal(rv):
			result.Mismatches = append(result.Mismatches, Mismatch{
				Key:     key,
				Left:    lv,
				Right:   rv,
				Columns: lv.DiffColumns(rv),
			})
		default:
			result.Summary.Matched++
		}
		return true
	})

	right.Range(func(key KeyTuple, _ ValueTuple) bool {
		if !left.Has(key) {
			result.OnlyRight = append(result.OnlyRight, key)
		}
		return true
	})

	result.Summary.LeftRows = left.Rows
	result.Summary.RightRows = right.Rows
	result.Summary.LeftKeys = left.Len()
	result.Summary.RightKeys = right.Len()
	result.Summary.LeftDuplicates = left.Duplicates
	result.Summary.RightDuplicates = right.Duplicates
	result.Summary.OnlyLeft = len(result.OnlyLeft)
	result.Summary.OnlyRight = len(result.OnlyRight)
	result.Summary.Mismatches = len(result.Mismatches)

	return result
}

// Compare runs the whole pipeline: validate both headers, index each dataset
// by keys, then diff the two indices. Nothing is indexed when validation fails.
func Compare(ctx context.Context, left, right *dataset.Dataset, keys []string, opts Options) (*DiffResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys = uniqueNames(keys)
	values, err := Validate(left.Header, right.Header, keys)
	if err != nil {
		return nil, err
	}

	idxOpts := IndexOptions{StrictKeys: opts.StrictKeys}

	if opts.Sequential {
		leftMap, err := Index(left, keys, values, idxOpts)
		if err != nil {
			return nil, err
		}
		rightMap, err := Index(right, keys, values, idxOpts)
		if err != nil {
			return nil, err
		}
		return Diff(leftMap, rightMap), nil
	}

	// The two index builds share nothing; join both before diffing
	var leftMap, rightMap *KeyedMap
	var g errgroup.Group
	g.Go(func() error {
		var err error
		leftMap, err = Index(left, keys, values, idxOpts)
		return err
	})
	g.Go(func() error {
		var err error
		rightMap, err = Index(right, keys, values, idxOpts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Diff(leftMap, rightMap), nil
}
