package lambda

import "fmt"

// ClassDef owns its method tables outright; method closures are the
// defining scope, never an instance. Many instances share one ClassDef by
// reference.
type ClassDef struct {
	Name          string
	Methods       map[string]*Function
	StaticMethods map[string]*Function
}

// Arity reports the constructor's parameter count, or zero when the class
// declares no init.
func (c *ClassDef) Arity() int {
	if init, ok := c.Methods["init"]; ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class. When an init method is declared it is bound
// to the fresh instance and run exactly once, for effect only; the instance
// itself is always the result.
func (c *ClassDef) Call(exec *Execution, args []Value) (Value, error) {
	instance := NewInstance(&Instance{Class: c, Fields: make(map[string]Value)})
	if init, ok := c.Methods["init"]; ok {
		if _, err := init.Bind(instance).Call(exec, args); err != nil {
			return NewNil(), err
		}
	}
	return instance, nil
}

func (c *ClassDef) String() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// Instance holds one shared reference to its class plus its own field map.
// Fields are not pre-declared; the first set creates them.
type Instance struct {
	Class  *ClassDef
	Fields map[string]Value
}

func (i *Instance) String() string {
	return fmt.Sprintf("<%s instance>", i.Class.Name)
}

// NativeHandle is an opaque value owned by an external collaborator. The
// evaluator resolves property access through the fixed table and never
// inspects the handle beyond it.
type NativeHandle interface {
	Property(name string) (Value, bool)
	String() string
}
