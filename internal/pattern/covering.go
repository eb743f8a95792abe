package pattern

import "github.com/funvibe/patcover/internal/core"

// ComputeCovering returns the indices of the rows of actualRows that
// together cover row. The second result is false when actualRows do not
// cover row. A row containing an absurd pattern needs no cover and yields an
// empty, covered result.
func ComputeCovering(actualRows [][]Pattern, row []Pattern) ([]int, bool) {
	indices, _, ok := ComputeCoveringSubst(actualRows, row)
	return indices, ok
}

// ComputeCoveringSubst is ComputeCovering that also returns, for each
// covering index, what the bindings of row were matched against in that
// actual row.
func ComputeCoveringSubst(actualRows [][]Pattern, row []Pattern) ([]int, []*Subst, bool) {
	for _, p := range row {
		if _, ok := p.(*AbsurdPattern); ok {
			return []int{}, []*Subst{}, true
		}
	}
	if len(actualRows) == 0 {
		return nil, nil, false
	}

	var coveringIndices []int
	var coveringSubsts []*Subst
	var order []*core.Binding
	contributions := make(map[*core.Binding][]Pattern)
	for i, actual := range actualRows {
		subst := NewSubst()
		if !UnifyRow(actual, row, Ignore, subst) {
			continue
		}
		coveringIndices = append(coveringIndices, i)
		coveringSubsts = append(coveringSubsts, subst)
		for _, b := range subst.keys {
			if _, seen := contributions[b]; !seen {
				order = append(order, b)
			}
			contributions[b] = append(contributions[b], subst.m[b])
		}
	}

	if len(coveringIndices) == 0 {
		return nil, nil, false
	}

	for _, b := range order {
		if !CheckCoverage(contributions[b], b.Type) {
			return nil, nil, false
		}
	}

	return coveringIndices, coveringSubsts, true
}
