package lambda

import (
	"fmt"
	"time"
)

// registerStdlib populates the engine's builtin table. This is the only
// place natives enter the global frame; there is no hidden registration
// lifecycle.
func registerStdlib(e *Engine) {
	e.RegisterBuiltin("clock", 0, builtinClock)
	e.RegisterBuiltin("len", 1, builtinLen)
	e.RegisterBuiltin("str", 1, builtinStr)
	e.RegisterBuiltin("push", VariadicArity, builtinPush)
}

func builtinClock(exec *Execution, args []Value) (Value, error) {
	return NewNumber(float64(time.Now().UnixMilli()) / 1000), nil
}

func builtinLen(exec *Execution, args []Value) (Value, error) {
	switch args[0].Kind() {
	case KindString:
		return NewNumber(float64(len(args[0].String()))), nil
	case KindList:
		return NewNumber(float64(len(args[0].List().Elements))), nil
	default:
		return NewNil(), fmt.Errorf("len expects a string or list, got %s", args[0].Kind())
	}
}

func builtinStr(exec *Execution, args []Value) (Value, error) {
	return NewString(args[0].String()), nil
}

// push appends one or more values to a list and returns the list. Declared
// variadic, so it validates its own argument count.
func builtinPush(exec *Execution, args []Value) (Value, error) {
	if len(args) < 2 {
		return NewNil(), fmt.Errorf("push expects a list and at least one value, got %d arguments", len(args))
	}
	if args[0].Kind() != KindList {
		return NewNil(), fmt.Errorf("push expects a list, got %s", args[0].Kind())
	}
	list := args[0].List()
	list.Elements = append(list.Elements, args[1:]...)
	return args[0], nil
}
