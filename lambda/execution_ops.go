package lambda

func (exec *Execution) evalUnaryExpr(e *UnaryExpr, env *Env) (Value, error) {
	right, err := exec.evalExpression(e.Right, env)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator {
	case tokenBang:
		return NewBool(!right.Truthy()), nil
	case tokenMinus:
		if right.Kind() != KindNumber {
			return NewNil(), exec.errorAt(ErrTypeMismatch, e.Pos(), "operand of unary - must be a number, got %s", right.Kind())
		}
		return NewNumber(-right.Number()), nil
	default:
		panic("lambda: unhandled unary operator")
	}
}

func (exec *Execution) evalBinaryExpr(e *BinaryExpr, env *Env) (Value, error) {
	left, err := exec.evalExpression(e.Left, env)
	if err != nil {
		return NewNil(), err
	}
	right, err := exec.evalExpression(e.Right, env)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator {
	case tokenPlus:
		// + is the one overloaded operator: numeric sum or string
		// concatenation, never a mix.
		if left.Kind() == KindNumber && right.Kind() == KindNumber {
			return NewNumber(left.Number() + right.Number()), nil
		}
		if left.Kind() == KindString && right.Kind() == KindString {
			return NewString(left.String() + right.String()), nil
		}
		return NewNil(), exec.errorAt(ErrTypeMismatch, e.Pos(), "operands of + must both be numbers or both be strings, got %s and %s", left.Kind(), right.Kind())
	case tokenMinus, tokenAsterisk, tokenSlash, tokenLT, tokenLTE, tokenGT, tokenGTE:
		if left.Kind() != KindNumber || right.Kind() != KindNumber {
			return NewNil(), exec.errorAt(ErrTypeMismatch, e.Pos(), "operands of %s must be numbers, got %s and %s", e.Operator, left.Kind(), right.Kind())
		}
		l, r := left.Number(), right.Number()
		switch e.Operator {
		case tokenMinus:
			return NewNumber(l - r), nil
		case tokenAsterisk:
			return NewNumber(l * r), nil
		case tokenSlash:
			return NewNumber(l / r), nil
		case tokenLT:
			return NewBool(l < r), nil
		case tokenLTE:
			return NewBool(l <= r), nil
		case tokenGT:
			return NewBool(l > r), nil
		default:
			return NewBool(l >= r), nil
		}
	case tokenEQ:
		return NewBool(valuesEqual(left, right)), nil
	case tokenNotEQ:
		return NewBool(!valuesEqual(left, right)), nil
	default:
		panic("lambda: unhandled binary operator")
	}
}

// valuesEqual applies structural equality for the scalar kinds and
// reference identity for everything else. Nil equals only nil.
func valuesEqual(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool:
		return a.Bool() == b.Bool()
	case KindNumber:
		return a.Number() == b.Number()
	case KindString:
		return a.String() == b.String()
	default:
		return a.data == b.data
	}
}
