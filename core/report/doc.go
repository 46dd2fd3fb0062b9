// Package report renders a reconcile.DiffResult.
//
// Two formats are available:
//
//   - text: one line per discrepancy, in the order the diff produced them
//     (keys only in dataset 1, keys only in dataset 2, then value mismatches).
//   - json: a single document holding the three categories and the summary.
//     Keys only in dataset 2 are listed only when ShowOnlyRight is set.
//
// Example text output:
//
//	The key ["3"] is only present in dataset 1.
//	The key ["4"] is only present in dataset 2.
//	Values for key ["2"] differ: city: "LA" vs "SF"
//
// Writers never fail on discrepancies; an error is only returned when the
// underlying io.Writer does.
package report
