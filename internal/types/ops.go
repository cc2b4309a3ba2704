package types

// The operator signature table from spec.md §4.G. simplifyBinaryOperation
// consults this only after trying to constant-fold literal/range operands
// directly; it's the fallback "most specific widening permitted" when
// operands aren't concrete enough to fold.
func operatorResult(op string, left, right Type) Type {
	switch op {
	case "+":
		if isNumberish(left) && isNumberish(right) {
			return &Number{}
		}
		if (isStringish(left) || isStringish(right)) && (isStringish(left) || isNumberish(left)) && (isStringish(right) || isNumberish(right)) {
			return &String{}
		}
		return &Poisoned{Reason: "operator '+' is not defined for these operand types"}
	case "-", "*", "/":
		if isNumberish(left) && isNumberish(right) {
			return &Number{}
		}
		return &Poisoned{Reason: "operator '" + op + "' requires numeric operands"}
	case "==", "!=":
		return &Boolean{}
	case "<", ">", "<=", ">=":
		if (isNumberish(left) || isNilType(left)) && (isNumberish(right) || isNilType(right)) {
			return &Boolean{}
		}
		return &Poisoned{Reason: "operator '" + op + "' requires numeric or nil operands"}
	case "&&", "||":
		if (isBooleanish(left) || isNilType(left)) && (isBooleanish(right) || isNilType(right)) {
			return &Boolean{}
		}
		return &Poisoned{Reason: "operator '" + op + "' requires boolean or nil operands"}
	case "??":
		return excludeNil(right)
	default:
		return &Poisoned{Reason: "unknown operator '" + op + "'"}
	}
}

func isNumberish(t Type) bool {
	_, ok := t.(*Number)
	return ok
}

func isStringish(t Type) bool {
	_, ok := t.(*String)
	return ok
}

func isBooleanish(t Type) bool {
	_, ok := t.(*Boolean)
	return ok
}

func isNilType(t Type) bool {
	_, ok := t.(*Nil)
	return ok
}

// excludeNil computes Exclude<t, nil>: a union loses its nil members, and
// any other type is returned unchanged. simplifyNullish applies it to the
// left operand of `??`. operatorResult's `??` entry applies it to the
// right operand, but simplifyBinaryOperation routes `??` to
// simplifyNullish, so that entry is not reached from there.
func excludeNil(t Type) Type {
	u, ok := t.(*Union)
	if !ok {
		return t
	}
	members := make([]Type, 0, len(u.Members))
	for _, m := range u.Members {
		if !isNilType(m) {
			members = append(members, m)
		}
	}
	if len(members) == 1 {
		return members[0]
	}
	return &Union{Members: members}
}
