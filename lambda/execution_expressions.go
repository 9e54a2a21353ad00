package lambda

func (exec *Execution) evalExpression(expr Expression, env *Env) (Value, error) {
	if err := exec.step(); err != nil {
		return NewNil(), exec.wrapError(err, expr.Pos())
	}
	switch e := expr.(type) {
	case *NumberLiteral:
		return NewNumber(e.Value), nil
	case *StringLiteral:
		return NewString(e.Value), nil
	case *BoolLiteral:
		return NewBool(e.Value), nil
	case *NilLiteral:
		return NewNil(), nil
	case *ListLiteral:
		elements := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			val, err := exec.evalExpression(el, env)
			if err != nil {
				return NewNil(), err
			}
			elements[i] = val
		}
		return NewList(&List{Elements: elements}), nil
	case *Identifier:
		val, ok := env.Get(e.Name)
		if !ok {
			return NewNil(), exec.errorAt(ErrUndefinedVariable, e.Pos(), "undefined variable %q", e.Name)
		}
		return val, nil
	case *AssignExpr:
		value, err := exec.evalExpression(e.Value, env)
		if err != nil {
			return NewNil(), err
		}
		if !env.Assign(e.Name, value) {
			return NewNil(), exec.errorAt(ErrUndefinedVariable, e.Pos(), "undefined variable %q", e.Name)
		}
		return value, nil
	case *ThisExpr:
		val, ok := env.Get("this")
		if !ok {
			return NewNil(), exec.errorAt(ErrUndefinedVariable, e.Pos(), "this used outside of a method")
		}
		return val, nil
	case *UnaryExpr:
		return exec.evalUnaryExpr(e, env)
	case *BinaryExpr:
		return exec.evalBinaryExpr(e, env)
	case *CallExpr:
		return exec.evalCallExpr(e, env)
	case *GetExpr:
		return exec.evalGetExpr(e, env)
	case *SetExpr:
		return exec.evalSetExpr(e, env)
	default:
		panic("lambda: unhandled expression")
	}
}

// evalGetExpr resolves property access in a fixed order: static methods for
// classes, the registered property table for native handles, then fields
// before bound instance methods. Any miss is UndefinedProperty.
func (exec *Execution) evalGetExpr(e *GetExpr, env *Env) (Value, error) {
	obj, err := exec.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}

	switch obj.Kind() {
	case KindClass:
		if method, ok := obj.Class().StaticMethods[e.Name]; ok {
			return NewFunction(method), nil
		}
		return NewNil(), exec.errorAt(ErrUndefinedProperty, e.Pos(), "undefined property %q on class %s", e.Name, obj.Class().Name)
	case KindHandle:
		if val, ok := obj.Handle().Property(e.Name); ok {
			return val, nil
		}
		return NewNil(), exec.errorAt(ErrUndefinedProperty, e.Pos(), "undefined property %q on %s", e.Name, obj.Handle().String())
	case KindInstance:
		instance := obj.Instance()
		if val, ok := instance.Fields[e.Name]; ok {
			return val, nil
		}
		if method, ok := instance.Class.Methods[e.Name]; ok {
			return NewFunction(method.Bind(obj)), nil
		}
		return NewNil(), exec.errorAt(ErrUndefinedProperty, e.Pos(), "undefined property %q on %s instance", e.Name, instance.Class.Name)
	default:
		return NewNil(), exec.errorAt(ErrTypeMismatch, e.Pos(), "only instances have properties, got %s", obj.Kind())
	}
}

// evalSetExpr writes a field. Fields are not pre-declared; the first
// assignment creates one. Only instances accept writes.
func (exec *Execution) evalSetExpr(e *SetExpr, env *Env) (Value, error) {
	obj, err := exec.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}
	if obj.Kind() != KindInstance {
		return NewNil(), exec.errorAt(ErrTypeMismatch, e.Pos(), "only instances have fields, got %s", obj.Kind())
	}

	value, err := exec.evalExpression(e.Value, env)
	if err != nil {
		return NewNil(), err
	}
	obj.Instance().Fields[e.Name] = value
	return value, nil
}
