package pattern

import "github.com/funvibe/patcover/internal/core"

// CheckCoverage reports whether column, a list of patterns for one
// scrutinee of type typ, matches every value of typ.
//
// A column containing an absurd pattern, a binding or a function-tagged
// pattern is accepted immediately. Aliases are opaque here and are assumed
// to cover on their own.
func CheckCoverage(column []Pattern, typ core.Expr) bool {
	for _, p := range column {
		switch pat := p.(type) {
		case *AbsurdPattern, *BindingPattern:
			return true
		case *ConPattern:
			if _, ok := pat.Definition.(*core.FunctionDef); ok {
				return true
			}
		}
	}

	typ = core.Normalize(typ)

	if len(column) == 0 {
		call, ok := typ.(*core.DataCall)
		if !ok {
			return false
		}
		constructors, known := core.MatchedConstructors(call)
		return known && len(constructors) == 0
	}

	_, isTuple := column[0].(*TuplePattern)
	for _, p := range column {
		if _, ok := p.(*TuplePattern); ok != isTuple {
			return false
		}
	}

	if isTuple {
		var params *core.Telescope
		switch t := typ.(type) {
		case *core.SigmaExpr:
			params = t.Telescope()
		case *core.ClassCall:
			params = t.Telescope()
		default:
			return false
		}
		return CheckTelescopeCoverage(column, params)
	}

	call, ok := typ.(*core.DataCall)
	if !ok {
		return false
	}
	constructors, known := core.MatchedConstructors(call)
	if !known {
		return false
	}

	partition := make(map[core.Definition][]Pattern)
	for _, p := range column {
		def := definitionOf(p)
		partition[def] = append(partition[def], p)
	}

	for _, con := range constructors {
		list, ok := partition[con.Constructor]
		if !ok || !CheckTelescopeCoverage(list, con.Parameters) {
			return false
		}
	}
	return true
}

// CheckTelescopeCoverage reports whether the sub-pattern rows of patterns
// cover params. patterns must be non-empty constructor or tuple patterns.
// Each column is checked on its own against the current field type; later
// field types are taken abstractly, as declared.
func CheckTelescopeCoverage(patterns []Pattern, params *core.Telescope) bool {
	if len(patterns) == 0 {
		return false
	}
	rows := make([][]Pattern, len(patterns))
	for i, p := range patterns {
		rows[i] = p.SubPatterns()
	}
	return CheckRowsCoverage(rows, params)
}

// CheckRowsCoverage reports whether a pattern matrix covers params, the
// telescope of its scrutinees. Rows must all have the width of params.
// An empty matrix covers only if one of the field types is provably empty.
func CheckRowsCoverage(rows [][]Pattern, params *core.Telescope) bool {
	if len(rows) == 0 {
		for param := params; param.HasNext(); param = param.Next() {
			if CheckCoverage(nil, param.TypeExpr()) {
				return true
			}
		}
		return false
	}

	numberOfColumns := len(rows[0])
	for _, row := range rows {
		if len(row) != numberOfColumns {
			return false
		}
	}

	param := params
	for i := 0; i < numberOfColumns; i++ {
		if !param.HasNext() {
			return false
		}
		column := make([]Pattern, len(rows))
		for j, row := range rows {
			column[j] = row[i]
		}
		if !CheckCoverage(column, param.TypeExpr()) {
			return false
		}
		param = param.Next()
	}

	return !param.HasNext()
}
