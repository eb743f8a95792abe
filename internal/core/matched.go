package core

// MatchResult is the outcome of matching a constructor's index patterns
// against the arguments of a data call.
type MatchResult int

const (
	MatchYes   MatchResult = iota // the constructor is live
	MatchNo                       // ruled out by an index mismatch
	MatchMaybe                    // an argument is stuck, the answer is unknown
)

func (r MatchResult) String() string {
	switch r {
	case MatchYes:
		return "yes"
	case MatchNo:
		return "no"
	default:
		return "maybe"
	}
}

// ConstructorWithArgs is a live constructor together with its field
// telescope instantiated for a particular data call.
type ConstructorWithArgs struct {
	Constructor *ConstructorDef
	Parameters  *Telescope
}

// Instantiate computes the field telescope of c for the data arguments args.
// The telescope is nil unless the result is MatchYes.
func (c *ConstructorDef) Instantiate(args []Expr) (*Telescope, MatchResult) {
	if !c.IsIndexed() {
		return NewTelescope(c.Fields, bindParams(c.Data.Params, args)), MatchYes
	}
	if len(c.Patterns) != len(args) {
		return nil, MatchMaybe
	}

	vars := make(map[*Binding]bool, len(c.PatternBindings))
	for _, b := range c.PatternBindings {
		vars[b] = true
	}
	subst := make(Subst, len(c.PatternBindings))
	result := matchAll(c.Patterns, args, vars, subst)
	if result != MatchYes {
		return nil, result
	}
	return NewTelescope(c.Fields, subst), MatchYes
}

// MatchedConstructors enumerates the constructors of call.Data that are
// still possible for call's arguments. The second result is false when the
// set cannot be determined, which is different from a known empty set.
func MatchedConstructors(call *DataCall) ([]ConstructorWithArgs, bool) {
	var result []ConstructorWithArgs
	for _, con := range call.Data.Constructors {
		params, match := con.Instantiate(call.Args)
		switch match {
		case MatchYes:
			result = append(result, ConstructorWithArgs{Constructor: con, Parameters: params})
		case MatchMaybe:
			return nil, false
		}
	}
	if result == nil {
		result = []ConstructorWithArgs{}
	}
	return result, true
}

func matchAll(patterns, values []Expr, vars map[*Binding]bool, subst Subst) MatchResult {
	if len(patterns) != len(values) {
		return MatchNo
	}
	result := MatchYes
	for i, p := range patterns {
		switch matchExpr(p, values[i], vars, subst) {
		case MatchNo:
			return MatchNo
		case MatchMaybe:
			result = MatchMaybe
		}
	}
	return result
}

func matchExpr(pattern, value Expr, vars map[*Binding]bool, subst Subst) MatchResult {
	switch pat := pattern.(type) {
	case *Ref:
		if vars[pat.Binding] {
			subst[pat.Binding] = value
			return MatchYes
		}
		if ref, ok := Normalize(value).(*Ref); ok && ref.Binding == pat.Binding {
			return MatchYes
		}
		return MatchMaybe
	case *ConCall:
		con, ok := Normalize(value).(*ConCall)
		if !ok {
			return MatchMaybe
		}
		if con.Con != pat.Con {
			return MatchNo
		}
		return matchAll(pat.Args, con.Args, vars, subst)
	case *TupleExpr:
		tuple, ok := Normalize(value).(*TupleExpr)
		if !ok {
			return MatchMaybe
		}
		return matchAll(pat.Fields, tuple.Fields, vars, subst)
	default:
		return MatchMaybe
	}
}
