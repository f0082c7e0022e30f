package jobid

// Allocate returns the next sequence number for code given every identifier
// issued so far: one more than the highest sequence already used by the
// category, or 1 when the category has none. Identifiers of other categories
// are ignored; an unparseable sequence counts as 0.
//
// The result is only collision-free if existing is complete at the time of
// the call. Callers persisting the result must back it with a uniqueness
// constraint.
func Allocate(code Code, existing []string) int {
	highest := 0
	for _, id := range existing {
		c, ok := CategoryOf(id)
		if !ok || c != code {
			continue
		}
		if n := SequenceOf(id); n > highest {
			highest = n
		}
	}
	return highest + 1
}
