// Package reconcile compares two datasets row by row, keyed by a composite
// primary key.
//
// # Architecture
//
// The comparison is a linear pipeline of pure functions:
//
// 1. Validate: confirms both headers hold the same column names (in any order)
// and that every key column exists in both. It returns the value columns.
//
// 2. Index: builds a KeyedMap from a dataset, mapping each KeyTuple to a
// ValueTuple (column name -> cell). A repeated key overwrites the earlier row
// (last write wins) unless strict keys are requested.
//
// 3. Diff: classifies every key as only-left, only-right, or shared, and
// reports shared keys whose ValueTuples differ as Mismatches.
//
// Compare chains the three steps and indexes both datasets concurrently.
//
// # Value comparison
//
// ValueTuples are compared by column name, never by position, so datasets
// whose headers list the same columns in a different order compare correctly.
//
// # Usage Example
//
//	result, err := reconcile.Compare(ctx, left, right, []string{"id"}, reconcile.Options{})
//	if errors.Is(err, reconcile.ErrSchemaMismatch) {
//	    // headers differ
//	}
//	for _, m := range result.Mismatches {
//	    fmt.Println(m.Key, m.Columns)
//	}
package reconcile
