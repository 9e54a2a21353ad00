package lambda

import (
	"fmt"
	"strconv"
	"strings"
)

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Number() float64 {
	if v.kind == KindNumber {
		return v.data.(float64)
	}
	return 0
}

func (v Value) List() *List {
	if v.kind != KindList {
		return nil
	}
	return v.data.(*List)
}

func (v Value) Function() *Function {
	if v.kind != KindFunction {
		return nil
	}
	return v.data.(*Function)
}

func (v Value) Builtin() *Builtin {
	if v.kind != KindBuiltin {
		return nil
	}
	return v.data.(*Builtin)
}

func (v Value) Class() *ClassDef {
	if v.kind != KindClass {
		return nil
	}
	return v.data.(*ClassDef)
}

func (v Value) Instance() *Instance {
	if v.kind != KindInstance {
		return nil
	}
	return v.data.(*Instance)
}

func (v Value) Handle() NativeHandle {
	if v.kind != KindHandle {
		return nil
	}
	return v.data.(NativeHandle)
}

// Truthy maps any value to a conditional: nil is false, booleans are
// themselves, everything else is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.data.(bool)
	default:
		return true
	}
}

// String renders a value the way print shows it. Numbers drop the trailing
// fractional part when whole, so integer arithmetic reads as integers.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindNumber:
		return strconv.FormatFloat(v.data.(float64), 'f', -1, 64)
	case KindString:
		return v.data.(string)
	case KindList:
		list := v.data.(*List)
		parts := make([]string, len(list.Elements))
		for i, el := range list.Elements {
			parts[i] = el.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunction:
		return v.data.(*Function).String()
	case KindBuiltin:
		return v.data.(*Builtin).String()
	case KindClass:
		return v.data.(*ClassDef).String()
	case KindInstance:
		return v.data.(*Instance).String()
	case KindHandle:
		return v.data.(NativeHandle).String()
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}
