package reconcile

import (
	"fmt"
	"sort"

	"tablediff/core/dataset"
)

// Validate checks that left and right hold the same set of column names and
// that every key column exists in both. It returns the value columns: the
// left header minus the key columns, in left header order.
//
// Key columns are checked before the header sets so a key missing from one
// side is reported as such rather than as a plain header difference. Keys
// are a name set: a repeated key name counts once.
func Validate(left, right dataset.Header, keys []string) ([]string, error) {
	keys = uniqueNames(keys)
	if len(keys) == 0 {
		return nil, ErrNoKeyColumns
	}
	if err := checkUnique("dataset 1 header", left); err != nil {
		return nil, err
	}
	if err := checkUnique("dataset 2 header", right); err != nil {
		return nil, err
	}

	leftSet := toSet(left)
	rightSet := toSet(right)

	for _, key := range keys {
		_, inLeft := leftSet[key]
		_, inRight := rightSet[key]
		if inLeft && inRight {
			continue
		}
		missing := &MissingKeyColumnError{Column: key}
		if !inLeft {
			missing.Datasets = append(missing.Datasets, 1)
		}
		if !inRight {
			missing.Datasets = append(missing.Datasets, 2)
		}
		return nil, missing
	}

	if onlyLeft, onlyRight := symmetricDifference(leftSet, rightSet); len(onlyLeft) > 0 || len(onlyRight) > 0 {
		return nil, &SchemaMismatchError{OnlyLeft: onlyLeft, OnlyRight: onlyRight}
	}

	keySet := toSet(keys)
	values := make([]string, 0, len(left)-len(keys))
	for _, name := range left {
		if _, isKey := keySet[name]; !isKey {
			values = append(values, name)
		}
	}

	return values, nil
}

func checkUnique(what string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q appears twice in %s", ErrDuplicateColumn, name, what)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// uniqueNames drops repeated names, keeping the first occurrence of each.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func symmetricDifference(a, b map[string]struct{}) (onlyA, onlyB []string) {
	for name := range a {
		if _, ok := b[name]; !ok {
			onlyA = append(onlyA, name)
		}
	}
	for name := range b {
		if _, ok := a[name]; !ok {
			onlyB = append(onlyB, name)
		}
	}
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	return onlyA, onlyB
}
