package reconcile

import (
	"fmt"

	"tablediff/core/dataset"
)

// IndexOptions controls how rows are indexed.
type IndexOptions struct {
	// StrictKeys fails with ErrDuplicateKey instead of overwriting a repeated key.
	StrictKeys bool
}

// Index builds a KeyedMap from ds. Key cells are taken in keys order; value
// cells are stored by column name. Columns are resolved against the dataset's
// own header, so the two datasets may order their columns differently.
//
// A repeated key overwrites the earlier row unless opts.StrictKeys is set.
func Index(ds *dataset.Dataset, keys, values []string, opts IndexOptions) (*KeyedMap, error) {
	positions := ds.Header.Positions()

	keyPos, err := resolve(ds, positions, keys)
	if err != nil {
		return nil, err
	}
	valuePos, err := resolve(ds, positions, values)
	if err != nil {
		return nil, err
	}

	m := NewKeyedMap()
	for i, row := range ds.Rows {
		if len(row) != len(ds.Header) {
			return nil, fmt.Errorf("%w: row %d of %s has %d cells, header has %d",
				ErrRowWidth, i+1, ds.Name, len(row), len(ds.Header))
		}

		key := make(KeyTuple, len(keyPos))
		for j, p := range keyPos {
			key[j] = row[p]
		}

		vals := make(ValueTuple, len(valuePos))
		for j, p := range valuePos {
			vals[values[j]] = row[p]
		}

		if opts.StrictKeys && m.Has(key) {
			return nil, &DuplicateKeyError{Dataset: ds.Name, Key: key, Row: i + 1}
		}
		m.Put(key, vals)
	}

	return m, nil
}

func resolve(ds *dataset.Dataset, positions map[string]int, names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		p, ok := positions[name]
		if !ok {
			return nil, &ColumnNotFoundError{Column: name, Dataset: ds.Name}
		}
		out[i] = p
	}
	return out, nil
}
