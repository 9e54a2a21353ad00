package ace

import (
	"fmt"

	"github.com/Weno-AceUI/Lambda/lambda"
)

// Handle wraps a widget as the opaque native value scripts hold. Property
// access resolves against a fixed table of native methods; the evaluator
// never reaches the widget itself.
type Handle struct {
	widget *Widget
}

func newHandleValue(w *Widget) lambda.Value {
	return lambda.NewHandle(&Handle{widget: w})
}

// Widget exposes the underlying tree node to the host (renderers, tests).
func (h *Handle) Widget() *Widget { return h.widget }

func (h *Handle) String() string {
	return fmt.Sprintf("<%s handle>", h.widget.Kind)
}

// Property implements lambda.NativeHandle. Every widget exposes the same
// table; unknown names miss so the evaluator reports UndefinedProperty.
func (h *Handle) Property(name string) (lambda.Value, bool) {
	switch name {
	case "add":
		return h.method("add", 1, h.add), true
	case "setEventHandler":
		return h.method("setEventHandler", 2, h.setEventHandler), true
	case "setBackgroundColor":
		return h.method("setBackgroundColor", 1, h.setBackgroundColor), true
	case "setText":
		return h.method("setText", 1, h.setText), true
	default:
		return lambda.Value{}, false
	}
}

func (h *Handle) method(name string, arity int, fn lambda.BuiltinFunc) lambda.Value {
	return lambda.NewBuiltin(&lambda.Builtin{
		Name:      fmt.Sprintf("%s.%s", h.widget.Kind, name),
		NumParams: arity,
		Fn:        fn,
	})
}

func (h *Handle) add(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	if args[0].Kind() != lambda.KindHandle {
		return lambda.NewNil(), fmt.Errorf("%s.add expects a widget handle, got %s", h.widget.Kind, args[0].Kind())
	}
	child, ok := args[0].Handle().(*Handle)
	if !ok {
		return lambda.NewNil(), fmt.Errorf("%s.add expects an ace widget handle", h.widget.Kind)
	}
	h.widget.Children = append(h.widget.Children, child.widget)
	return args[0], nil
}

func (h *Handle) setEventHandler(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	if args[0].Kind() != lambda.KindString {
		return lambda.NewNil(), fmt.Errorf("%s.setEventHandler expects an event name string", h.widget.Kind)
	}
	switch args[1].Kind() {
	case lambda.KindFunction, lambda.KindBuiltin:
	default:
		return lambda.NewNil(), fmt.Errorf("%s.setEventHandler expects a callable handler, got %s", h.widget.Kind, args[1].Kind())
	}
	h.widget.Handlers[args[0].String()] = args[1]
	return lambda.NewNil(), nil
}

func (h *Handle) setBackgroundColor(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	if args[0].Kind() != lambda.KindString {
		return lambda.NewNil(), fmt.Errorf("%s.setBackgroundColor expects a color string", h.widget.Kind)
	}
	h.widget.Background = args[0].String()
	return lambda.NewNil(), nil
}

func (h *Handle) setText(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	if args[0].Kind() != lambda.KindString {
		return lambda.NewNil(), fmt.Errorf("%s.setText expects a string", h.widget.Kind)
	}
	h.widget.Text = args[0].String()
	return lambda.NewNil(), nil
}
