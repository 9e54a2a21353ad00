package lambda

func (exec *Execution) evalCallExpr(e *CallExpr, env *Env) (Value, error) {
	callee, err := exec.evalExpression(e.Callee, env)
	if err != nil {
		return NewNil(), err
	}

	args := make([]Value, len(e.Args))
	for i, arg := range e.Args {
		val, err := exec.evalExpression(arg, env)
		if err != nil {
			return NewNil(), err
		}
		args[i] = val
	}

	callable, ok := callableFrom(callee)
	if !ok {
		return NewNil(), exec.errorAt(ErrNotCallable, e.Pos(), "cannot call %s value %s", callee.Kind(), callee.String())
	}

	if arity := callable.Arity(); arity != VariadicArity && len(args) != arity {
		return NewNil(), exec.errorAt(ErrArityMismatch, e.Pos(), "%s expects %d arguments, got %d", callable.String(), arity, len(args))
	}

	if exec.callDepth >= exec.engine.config.RecursionLimit {
		return NewNil(), exec.errorAt(errRuntimeBase, e.Pos(), "call depth exceeded %d", exec.engine.config.RecursionLimit)
	}

	exec.pushFrame(callable.String(), e.Pos())
	result, err := callable.Call(exec, args)
	exec.popFrame()
	if err != nil {
		return NewNil(), exec.wrapError(err, e.Pos())
	}
	return result, nil
}
