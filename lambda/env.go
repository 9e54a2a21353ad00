package lambda

// Env is one frame of the lexical scope chain. Frames are plain pointers:
// closures and bound methods keep their defining frame alive for as long as
// they exist, so a frame routinely outlives the call that created it.
type Env struct {
	parent *Env
	values map[string]Value
}

func newEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Define inserts or overwrites a binding in this frame. Re-declaration in
// the same frame shadows without error; a declaration keyword is the only
// way to introduce a name.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Get walks the chain outward from this frame. The second result is false
// when no frame defines the name; lookups never create bindings.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Assign mutates the innermost frame that already defines the name. It
// reports false when no enclosing frame does; assignment never introduces a
// binding, which keeps a typo'd name from silently becoming a global.
func (e *Env) Assign(name string, val Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return false
}
