// Package dedup removes near-duplicate rows from an ordered sequence using
// Levenshtein distance over their comparison text.
package dedup

// Deduplicate walks rows in order and keeps the first of every near-duplicate
// group: a row is dropped when its key is within threshold edits of any
// already-kept row's key. First seen wins, and the relative order of
// survivors is preserved.
//
// The filter is deliberately order-dependent rather than a true clustering:
// a chain of rows each close to its predecessor but not to the head may all
// collapse onto the head. That matches the dataset-build semantics and is
// not a defect.
//
// Every decision depends on all previously kept rows, so this is a strict
// left-to-right fold; do not parallelize the comparisons. O(n²·L), fine for
// datasets in the low thousands.
func Deduplicate[T any](rows []T, key func(T) string, threshold int) []T {
	kept := make([]T, 0, len(rows))
	keys := make([]string, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		duplicate := false
		for _, existing := range keys {
			if Distance(k, existing) <= threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, row)
		keys = append(keys, k)
	}
	return kept
}
