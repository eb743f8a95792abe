package pattern

// Refines reports whether q accepts every value p accepts.
func Refines(p, q Pattern) bool {
	if _, ok := q.(*BindingPattern); ok {
		return true
	}

	_, pAbsurd := p.(*AbsurdPattern)
	_, qAbsurd := q.(*AbsurdPattern)
	if pAbsurd && qAbsurd {
		return true
	}

	return sameTag(p, q) && RefinesRow(p.SubPatterns(), q.SubPatterns())
}

// RefinesRow compares rows position by position; rows of different length
// never refine each other.
func RefinesRow(row1, row2 []Pattern) bool {
	if len(row1) != len(row2) {
		return false
	}
	for i := range row1 {
		if !Refines(row1[i], row2[i]) {
			return false
		}
	}
	return true
}
