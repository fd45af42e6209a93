package dedup

// Distance computes the Levenshtein edit distance between two strings with
// unit-cost insertions, deletions and substitutions. It operates on runes,
// not bytes, so multi-byte Japanese text is measured per character.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current[0] = i
		for j := 1; j <= len(rb); j++ {
			insertCost := current[j-1] + 1
			deleteCost := prev[j] + 1
			replaceCost := prev[j-1]
			if ra[i-1] != rb[j-1] {
				replaceCost++
			}
			current[j] = min(insertCost, deleteCost, replaceCost)
		}
		prev, current = current, prev
	}
	return prev[len(rb)]
}
