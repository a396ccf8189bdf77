package ids

import "sort"

// UniquePrefixLengths returns, for each distinct ID, the shortest prefix
// length that distinguishes it from every other ID in the set. Generated
// IDs are lowercase base32 by construction, so comparison is byte-wise.
//
// After sorting, an ID's closest competitors are its immediate
// neighbors: its answer is one more than the longest prefix it shares
// with either of them, capped at the ID's own length.
func UniquePrefixLengths(ids []string) map[string]int {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Strings(unique)

	lengths := make(map[string]int, len(unique))
	for i, id := range unique {
		shared := 0
		if i > 0 {
			shared = commonPrefixLen(id, unique[i-1])
		}
		if i < len(unique)-1 {
			if n := commonPrefixLen(id, unique[i+1]); n > shared {
				shared = n
			}
		}
		length := shared + 1
		if length > len(id) {
			length = len(id)
		}
		lengths[id] = length
	}

	return lengths
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
