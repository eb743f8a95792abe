package pattern

// Unify reports whether some value is matched by both p1 and p2. Bindings of
// p1 are reported to subst1 with the part of p2 they face, and bindings of p2
// to subst2 with the part of p1.
//
// This is an overlap test, not general unification: a binding facing a
// binding is recorded on both sides and nothing is propagated further.
// A nil collector behaves like Ignore.
func Unify(p1, p2 Pattern, subst1, subst2 Collector) bool {
	subst1, subst2 = orIgnore(subst1), orIgnore(subst2)
	_, absurd1 := p1.(*AbsurdPattern)
	_, absurd2 := p2.(*AbsurdPattern)
	if absurd1 && absurd2 {
		return true
	}

	b1, isBinding1 := p1.(*BindingPattern)
	b2, isBinding2 := p2.(*BindingPattern)
	if isBinding1 || isBinding2 {
		if isBinding1 {
			subst1.Collect(b1.Binding, p2)
		}
		if isBinding2 {
			subst2.Collect(b2.Binding, p1)
		}
		return true
	}

	if absurd1 || absurd2 || !sameTag(p1, p2) {
		return false
	}

	return UnifyRow(p1.SubPatterns(), p2.SubPatterns(), subst1, subst2)
}

// UnifyRow unifies two rows position by position and stops at the first
// failure. After a failure the collectors may hold partial results.
func UnifyRow(row1, row2 []Pattern, subst1, subst2 Collector) bool {
	if len(row1) != len(row2) {
		return false
	}
	subst1, subst2 = orIgnore(subst1), orIgnore(subst2)
	for i := range row1 {
		if !Unify(row1[i], row2[i], subst1, subst2) {
			return false
		}
	}
	return true
}

func orIgnore(c Collector) Collector {
	if c == nil {
		return Ignore
	}
	return c
}
