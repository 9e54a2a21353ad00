package lambda

import "fmt"

// evalStatements runs a statement list in the given frame. The middle
// result reports an explicit return: it is a control-flow signal distinct
// from the error channel, so propagation of genuine faults stays separate
// from function returns.
func (exec *Execution) evalStatements(stmts []Statement, env *Env) (Value, bool, error) {
	for _, stmt := range stmts {
		if err := exec.step(); err != nil {
			return NewNil(), false, exec.wrapError(err, stmt.Pos())
		}
		val, returned, err := exec.evalStatement(stmt, env)
		if err != nil {
			return NewNil(), false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return NewNil(), false, nil
}

func (exec *Execution) evalStatement(stmt Statement, env *Env) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ExprStmt:
		val, err := exec.evalExpression(s.Expr, env)
		return val, false, err
	case *PrintStmt:
		val, err := exec.evalExpression(s.Expr, env)
		if err != nil {
			return NewNil(), false, err
		}
		fmt.Fprintln(exec.output, val.String())
		return NewNil(), false, nil
	case *VarStmt:
		value := NewNil()
		if s.Initializer != nil {
			var err error
			value, err = exec.evalExpression(s.Initializer, env)
			if err != nil {
				return NewNil(), false, err
			}
		}
		env.Define(s.Name, value)
		return NewNil(), false, nil
	case *BlockStmt:
		// A fresh child frame scopes the block; it is dropped on every
		// exit path, normal or error, simply by falling out of scope.
		return exec.evalStatements(s.Statements, newEnv(env))
	case *IfStmt:
		cond, err := exec.evalExpression(s.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if cond.Truthy() {
			return exec.evalStatement(s.Then, env)
		}
		if s.Else != nil {
			return exec.evalStatement(s.Else, env)
		}
		return NewNil(), false, nil
	case *ClassStmt:
		return exec.evalClassStatement(s, env)
	case *ReturnStmt:
		value := NewNil()
		if s.Value != nil {
			var err error
			value, err = exec.evalExpression(s.Value, env)
			if err != nil {
				return NewNil(), false, err
			}
		}
		return value, true, nil
	default:
		// Unreachable for parser-produced trees; a new statement node
		// without a handler is a programming error.
		panic(fmt.Sprintf("lambda: unhandled statement %T", stmt))
	}
}

func (exec *Execution) evalClassStatement(s *ClassStmt, env *Env) (Value, bool, error) {
	class := &ClassDef{
		Name:          s.Name,
		Methods:       make(map[string]*Function),
		StaticMethods: make(map[string]*Function),
	}

	for _, method := range s.Methods {
		fn := &Function{
			Name:          s.Name + "." + method.Name,
			Params:        method.Params,
			Body:          method.Body,
			Closure:       env,
			IsInitializer: !method.IsStatic && method.Name == "init",
		}
		if method.IsStatic {
			class.StaticMethods[method.Name] = fn
		} else {
			class.Methods[method.Name] = fn
		}
	}

	env.Define(s.Name, NewClass(class))
	return NewNil(), false, nil
}
