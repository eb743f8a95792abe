package core

import "github.com/funvibe/patcover/internal/config"

// Normalize reduces e to weak head normal form: function calls with a body
// are unfolded until the head is a constructor, a type former, a variable or
// a stuck call. Unfolding gives up after config.MaxUnfoldings steps so a
// looping alias stays stuck instead of hanging the caller.
func Normalize(e Expr) Expr {
	for i := 0; i < config.MaxUnfoldings; i++ {
		call, ok := e.(*FuncCall)
		if !ok || call.Func.Body == nil || len(call.Args) < len(call.Func.Params) {
			return e
		}
		e = Apply(call.Func.Body, bindParams(call.Func.Params, call.Args))
	}
	return e
}
