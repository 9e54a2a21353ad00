package lambda

import "fmt"

// VariadicArity marks a callable that validates its own argument count.
const VariadicArity = -1

// Callable is the single contract the evaluator uses to invoke anything:
// script methods, registered builtins, classes acting as constructors, and
// native handle methods all implement it. The evaluator never looks past
// these three operations.
type Callable interface {
	Arity() int
	Call(exec *Execution, args []Value) (Value, error)
	String() string
}

// Function is a script-declared method together with its captured defining
// frame. Binding to an instance produces a new Function whose closure is a
// one-entry frame holding "this".
type Function struct {
	Name          string
	Params        []string
	Body          []Statement
	Closure       *Env
	IsInitializer bool
}

func (f *Function) Arity() int { return len(f.Params) }

func (f *Function) Call(exec *Execution, args []Value) (Value, error) {
	env := newEnv(f.Closure)
	for i, param := range f.Params {
		env.Define(param, args[i])
	}

	result, returned, err := exec.evalStatements(f.Body, env)
	if err != nil {
		return NewNil(), err
	}

	if f.IsInitializer {
		// Constructors yield the instance regardless of any return value.
		this, _ := f.Closure.Get("this")
		return this, nil
	}
	if returned {
		return result, nil
	}
	return NewNil(), nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Bind produces a copy of the function whose closure resolves "this" to the
// given instance. The bound frame sits between the method's defining scope
// and its call frame.
func (f *Function) Bind(instance Value) *Function {
	env := newEnv(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// BuiltinFunc is the host-side implementation of a registered builtin.
type BuiltinFunc func(exec *Execution, args []Value) (Value, error)

// Builtin wraps a host function as a Callable. NumParams of VariadicArity
// defers argument-count validation to the function itself.
type Builtin struct {
	Name      string
	NumParams int
	Fn        BuiltinFunc
}

func (b *Builtin) Arity() int { return b.NumParams }

func (b *Builtin) Call(exec *Execution, args []Value) (Value, error) {
	return b.Fn(exec, args)
}

func (b *Builtin) String() string {
	return fmt.Sprintf("<native fn %s>", b.Name)
}

// callableFrom extracts the Callable behind a value, if it has one.
func callableFrom(v Value) (Callable, bool) {
	switch v.Kind() {
	case KindFunction:
		return v.Function(), true
	case KindBuiltin:
		return v.Builtin(), true
	case KindClass:
		return v.Class(), true
	default:
		return nil, false
	}
}
