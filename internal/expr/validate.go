package expr

import "fmt"

// Problem is one advisory finding from Validate.
type Problem struct {
	Function string
	Message  string
}

// Validate walks a parse tree and reports argument-count and
// unknown-function problems. It is a separate pass over a tree Parse
// already accepted: parsing never checks arity, and callers are free to
// ignore these findings.
func Validate(n Node) []Problem {
	var problems []Problem
	walk(n, &problems)
	return problems
}

func walk(n Node, problems *[]Problem) {
	switch node := n.(type) {
	case *Operation:
		walk(node.Left, problems)
		walk(node.Right, problems)
	case *FunctionCall:
		checkCall(node, problems)
		for _, arg := range node.Args {
			walk(arg, problems)
		}
	}
}

func checkCall(call *FunctionCall, problems *[]Problem) {
	def, ok := FunctionByName(call.Name)
	if !ok {
		*problems = append(*problems, Problem{
			Function: call.Name,
			Message:  fmt.Sprintf("unknown function %s", call.Name),
		})
		return
	}

	required := 0
	for _, p := range def.Parameters {
		if !p.Optional {
			required++
		}
	}
	if len(call.Args) < required {
		*problems = append(*problems, Problem{
			Function: call.Name,
			Message:  fmt.Sprintf("%s expects at least %d argument(s), got %d", def.Name, required, len(call.Args)),
		})
	}
	if !def.Variadic && len(call.Args) > len(def.Parameters) {
		*problems = append(*problems, Problem{
			Function: call.Name,
			Message:  fmt.Sprintf("%s expects at most %d argument(s), got %d", def.Name, len(def.Parameters), len(call.Args)),
		})
	}
}
