// Package ace is the UI-binding collaborator for Lambda scripts. Scripts
// build a widget tree through native factory functions; the tree is then
// serialized to AceML markup or previewed in a terminal. The interpreter
// core only ever sees opaque handles with a fixed property table.
package ace

import (
	"github.com/Weno-AceUI/Lambda/lambda"
)

// WidgetKind names a node type in the widget tree.
type WidgetKind string

const (
	KindWindow     WidgetKind = "window"
	KindButton     WidgetKind = "button"
	KindLabel      WidgetKind = "label"
	KindIconGrid   WidgetKind = "icongrid"
	KindDock       WidgetKind = "dock"
	KindAppIcon    WidgetKind = "appicon"
	KindBackground WidgetKind = "background"
)

// Widget is one node of the scene a script constructs. Scripts never touch
// it directly; every mutation goes through the handle property table.
type Widget struct {
	Kind       WidgetKind
	Text       string // window title, button/label/appicon text
	Path       string // icon or image path
	Classes    []string
	Background string
	Handlers   map[string]lambda.Value
	Children   []*Widget
}

func newWidget(kind WidgetKind) *Widget {
	return &Widget{Kind: kind, Handlers: make(map[string]lambda.Value)}
}

// Handler returns the callback registered for an event name, if any.
func (w *Widget) Handler(event string) (lambda.Value, bool) {
	val, ok := w.Handlers[event]
	return val, ok
}

// Walk visits the widget and all descendants depth-first.
func (w *Widget) Walk(visit func(*Widget)) {
	visit(w)
	for _, child := range w.Children {
		child.Walk(visit)
	}
}
