package lambda

import "context"

// CapabilityAdapter binds host capabilities into a script run. Adapters
// return named native values (factories, handles) that land in the global
// frame; the evaluator only ever talks to them through the Callable and
// NativeHandle contracts.
type CapabilityAdapter interface {
	Bind(binding CapabilityBinding) (map[string]Value, error)
}

// CapabilityBinding provides execution context for adapters during binding.
type CapabilityBinding struct {
	Context context.Context
	Engine  *Engine
}
