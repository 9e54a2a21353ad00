package lambda

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindFunction
	KindBuiltin
	KindClass
	KindInstance
	KindHandle
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Value is the runtime tagged union. Compound payloads (lists, classes,
// instances, handles) are held by reference, so two Values may share one
// underlying object.
type Value struct {
	kind ValueKind
	data any
}

// List is an ordered, mutable sequence of values.
type List struct {
	Elements []Value
}
