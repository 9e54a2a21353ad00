package lambda

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RuntimeErrorKind names the five language-level fault classes.
type RuntimeErrorKind string

const (
	ErrUndefinedVariable RuntimeErrorKind = "UndefinedVariable"
	ErrUndefinedProperty RuntimeErrorKind = "UndefinedProperty"
	ErrTypeMismatch      RuntimeErrorKind = "TypeMismatch"
	ErrArityMismatch     RuntimeErrorKind = "ArityMismatch"
	ErrNotCallable       RuntimeErrorKind = "NotCallable"

	// errRuntimeBase covers host-side faults (quota, recursion) that are
	// not part of the language taxonomy.
	errRuntimeBase RuntimeErrorKind = "RuntimeError"
)

var errStepQuotaExceeded = errors.New("step quota exceeded")

type callFrame struct {
	Function string
	Pos      Position
}

// StackFrame is one rendered level of a runtime error trace.
type StackFrame struct {
	Function string
	Pos      Position
}

// RuntimeError is fatal to a run: the top-level interpret loop catches it,
// reports it, and stops. Output already produced stands.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Message string
	Pos     Position
	Frames  []StackFrame
}

func (re *RuntimeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[line %d] %s: %s", re.Pos.Line, re.Kind, re.Message)
	for _, frame := range re.Frames {
		if frame.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", frame.Function, frame.Pos.Line, frame.Pos.Column)
		} else {
			fmt.Fprintf(&b, "\n  at %s", frame.Function)
		}
	}
	return b.String()
}

// Execution is the per-run evaluator state. A single execution is strictly
// single-threaded: statements run in order against the root frame until
// completion or the first uncaught runtime error.
type Execution struct {
	engine    *Engine
	ctx       context.Context
	output    io.Writer
	root      *Env
	quota     int
	steps     int
	callDepth int
	callStack []callFrame
}

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return fmt.Errorf("%w (%d)", errStepQuotaExceeded, exec.quota)
	}
	if exec.ctx != nil {
		select {
		case <-exec.ctx.Done():
			return exec.ctx.Err()
		default:
		}
	}
	return nil
}

// Output returns the writer print statements target. Builtins that emit
// text should use it rather than writing to the process stdout directly.
func (exec *Execution) Output() io.Writer {
	return exec.output
}

func (exec *Execution) errorAt(kind RuntimeErrorKind, pos Position, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)

	frames := make([]StackFrame, 0, len(exec.callStack)+1)
	if len(exec.callStack) > 0 {
		current := exec.callStack[len(exec.callStack)-1]
		frames = append(frames, StackFrame{Function: current.Function, Pos: pos})
		for i := len(exec.callStack) - 1; i >= 0; i-- {
			frames = append(frames, StackFrame(exec.callStack[i]))
		}
	} else {
		frames = append(frames, StackFrame{Function: "<script>", Pos: pos})
	}

	return &RuntimeError{Kind: kind, Message: message, Pos: pos, Frames: frames}
}

// wrapError promotes a plain error from a builtin or the host into a
// RuntimeError carrying the faulting position. Existing RuntimeErrors pass
// through so the innermost location wins.
func (exec *Execution) wrapError(err error, pos Position) error {
	if err == nil {
		return nil
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return exec.errorAt(errRuntimeBase, pos, "%s", err.Error())
}

func (exec *Execution) pushFrame(function string, pos Position) {
	exec.callStack = append(exec.callStack, callFrame{Function: function, Pos: pos})
	exec.callDepth++
}

func (exec *Execution) popFrame() {
	exec.callStack = exec.callStack[:len(exec.callStack)-1]
	exec.callDepth--
}
