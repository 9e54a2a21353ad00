package ace

import (
	"fmt"
	"strings"

	"github.com/Weno-AceUI/Lambda/lambda"
)

// UICapability exposes the widget factory functions to scripts and keeps
// track of the root widgets they create, so the host can serialize or
// preview the scene after the run.
type UICapability struct {
	roots []*Widget
}

func NewUICapability() *UICapability {
	return &UICapability{}
}

// Roots returns top-level widgets (windows, docks, backgrounds) in creation
// order.
func (c *UICapability) Roots() []*Widget {
	return c.roots
}

// Bind implements lambda.CapabilityAdapter. Each factory returns an opaque
// handle; everything after creation goes through the handle property table.
func (c *UICapability) Bind(binding lambda.CapabilityBinding) (map[string]lambda.Value, error) {
	return map[string]lambda.Value{
		"createWindow":          c.factory("createWindow", 1, c.createWindow),
		"createButton":          c.factory("createButton", 1, c.createButton),
		"createLabel":           c.factory("createLabel", 2, c.createLabel),
		"createIconGrid":        c.factory("createIconGrid", 0, c.createIconGrid),
		"createDock":            c.factory("createDock", 0, c.createDock),
		"createAppIcon":         c.factory("createAppIcon", 2, c.createAppIcon),
		"createBackgroundImage": c.factory("createBackgroundImage", 1, c.createBackgroundImage),
	}, nil
}

func (c *UICapability) factory(name string, arity int, fn lambda.BuiltinFunc) lambda.Value {
	return lambda.NewBuiltin(&lambda.Builtin{Name: name, NumParams: arity, Fn: fn})
}

func (c *UICapability) createWindow(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	title, err := stringArg("createWindow", "title", args[0])
	if err != nil {
		return lambda.NewNil(), err
	}
	w := newWidget(KindWindow)
	w.Text = title
	c.roots = append(c.roots, w)
	return newHandleValue(w), nil
}

func (c *UICapability) createButton(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	label, err := stringArg("createButton", "label", args[0])
	if err != nil {
		return lambda.NewNil(), err
	}
	w := newWidget(KindButton)
	w.Text = label
	return newHandleValue(w), nil
}

// createLabel accepts classes as a space-separated string or a list of
// strings.
func (c *UICapability) createLabel(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	text, err := stringArg("createLabel", "text", args[0])
	if err != nil {
		return lambda.NewNil(), err
	}
	classes, err := classesArg(args[1])
	if err != nil {
		return lambda.NewNil(), err
	}
	w := newWidget(KindLabel)
	w.Text = text
	w.Classes = classes
	return newHandleValue(w), nil
}

func (c *UICapability) createIconGrid(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	return newHandleValue(newWidget(KindIconGrid)), nil
}

func (c *UICapability) createDock(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	w := newWidget(KindDock)
	c.roots = append(c.roots, w)
	return newHandleValue(w), nil
}

func (c *UICapability) createAppIcon(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	label, err := stringArg("createAppIcon", "label", args[0])
	if err != nil {
		return lambda.NewNil(), err
	}
	path, err := stringArg("createAppIcon", "path", args[1])
	if err != nil {
		return lambda.NewNil(), err
	}
	w := newWidget(KindAppIcon)
	w.Text = label
	w.Path = path
	return newHandleValue(w), nil
}

func (c *UICapability) createBackgroundImage(exec *lambda.Execution, args []lambda.Value) (lambda.Value, error) {
	path, err := stringArg("createBackgroundImage", "path", args[0])
	if err != nil {
		return lambda.NewNil(), err
	}
	w := newWidget(KindBackground)
	w.Path = path
	c.roots = append(c.roots, w)
	return newHandleValue(w), nil
}

func stringArg(factory, label string, val lambda.Value) (string, error) {
	if val.Kind() != lambda.KindString {
		return "", fmt.Errorf("%s expects %s as a string, got %s", factory, label, val.Kind())
	}
	return val.String(), nil
}

func classesArg(val lambda.Value) ([]string, error) {
	switch val.Kind() {
	case lambda.KindNil:
		return nil, nil
	case lambda.KindString:
		return strings.Fields(val.String()), nil
	case lambda.KindList:
		var classes []string
		for _, el := range val.List().Elements {
			if el.Kind() != lambda.KindString {
				return nil, fmt.Errorf("createLabel classes must be strings, got %s", el.Kind())
			}
			classes = append(classes, el.String())
		}
		return classes, nil
	default:
		return nil, fmt.Errorf("createLabel expects classes as a string or list, got %s", val.Kind())
	}
}
