package lambda

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Config controls interpreter defaults and host-safety bounds.
type Config struct {
	// Output receives print statement text. Defaults to os.Stdout.
	Output io.Writer
	// StepQuota bounds evaluation steps per run; zero applies the default.
	StepQuota int
	// RecursionLimit bounds call depth; zero applies the default.
	RecursionLimit int
}

// Engine compiles and executes Lambda programs. Construction registers the
// standard library once as an explicit data-building step; engines are
// stateless across runs.
type Engine struct {
	config   Config
	builtins map[string]Value
}

// NewEngine constructs an Engine with defaulted bounds and the stdlib
// registered.
func NewEngine(cfg Config) *Engine {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.StepQuota <= 0 {
		cfg.StepQuota = 1_000_000
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = 128
	}

	engine := &Engine{
		config:   cfg,
		builtins: make(map[string]Value),
	}
	registerStdlib(engine)
	return engine
}

// RegisterBuiltin exposes a host function to scripts under the given name.
// Pass VariadicArity to let the function validate its own argument count.
func (e *Engine) RegisterBuiltin(name string, arity int, fn BuiltinFunc) {
	e.builtins[name] = NewBuiltin(&Builtin{Name: name, NumParams: arity, Fn: fn})
}

// CompileError aggregates the lexical and syntax diagnostics of a failed
// compile. Any diagnostic blocks interpretation; they all surface at once.
type CompileError struct {
	Diagnostics []Diagnostic
}

func (e *CompileError) Error() string {
	parts := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}

// Script is a compiled program bound to its engine.
type Script struct {
	engine  *Engine
	program *Program
	source  string
}

// Compile lexes and parses source. Both phases recover and accumulate, so
// the returned CompileError carries every diagnostic found in one pass.
func (e *Engine) Compile(source string) (*Script, error) {
	program, diags := compileSource(source)
	if len(diags) > 0 {
		return nil, &CompileError{Diagnostics: diags}
	}
	return &Script{engine: e, program: program, source: source}, nil
}

// Check reports diagnostics without interpreting; editor integrations use
// it for on-type validation.
func (e *Engine) Check(source string) []Diagnostic {
	_, diags := compileSource(source)
	return diags
}

func compileSource(source string) (*Program, []Diagnostic) {
	tokens, lexDiags := scanSource(source)
	program, parseDiags := parseTokens(tokens)
	return program, append(lexDiags, parseDiags...)
}

// RunOptions binds host collaborators into one script run.
type RunOptions struct {
	// Output overrides the engine's print target for this run.
	Output io.Writer
	// Globals are pre-defined bindings in the global frame.
	Globals map[string]Value
	// Capabilities contribute native values (UI factories and the like)
	// to the global frame.
	Capabilities []CapabilityAdapter
}

// Run executes the program's statements in order against a fresh global
// frame. The first uncaught runtime error stops execution and is returned;
// output produced before it stands.
func (s *Script) Run(ctx context.Context, opts RunOptions) error {
	exec, err := s.engine.newExecution(ctx, opts)
	if err != nil {
		return err
	}
	_, _, err = exec.evalStatements(s.program.Statements, exec.root)
	return err
}

func (e *Engine) newExecution(ctx context.Context, opts RunOptions) (*Execution, error) {
	output := opts.Output
	if output == nil {
		output = e.config.Output
	}

	root := newEnv(nil)
	for name, val := range e.builtins {
		root.Define(name, val)
	}
	for _, adapter := range opts.Capabilities {
		bound, err := adapter.Bind(CapabilityBinding{Context: ctx, Engine: e})
		if err != nil {
			return nil, err
		}
		for name, val := range bound {
			root.Define(name, val)
		}
	}
	for name, val := range opts.Globals {
		root.Define(name, val)
	}

	return &Execution{
		engine: e,
		ctx:    ctx,
		output: output,
		root:   root,
		quota:  e.config.StepQuota,
	}, nil
}

// Session keeps a global frame alive across evaluations, for REPL use.
type Session struct {
	engine *Engine
	opts   RunOptions
	root   *Env
}

// NewSession binds capabilities and globals once and returns a session
// whose definitions persist between Eval calls.
func (e *Engine) NewSession(ctx context.Context, opts RunOptions) (*Session, error) {
	exec, err := e.newExecution(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Session{engine: e, opts: opts, root: exec.root}, nil
}

// Eval compiles and runs a source fragment against the session frame,
// returning the value of the last expression statement.
func (s *Session) Eval(ctx context.Context, source string) (Value, error) {
	program, diags := compileSource(source)
	if len(diags) > 0 {
		return NewNil(), &CompileError{Diagnostics: diags}
	}

	output := s.opts.Output
	if output == nil {
		output = s.engine.config.Output
	}
	exec := &Execution{
		engine: s.engine,
		ctx:    ctx,
		output: output,
		root:   s.root,
		quota:  s.engine.config.StepQuota,
	}

	last := NewNil()
	for _, stmt := range program.Statements {
		val, _, err := exec.evalStatement(stmt, s.root)
		if err != nil {
			return NewNil(), err
		}
		if _, ok := stmt.(*ExprStmt); ok {
			last = val
		}
	}
	return last, nil
}

// Call invokes a callable value directly, outside any script text. Hosts
// use it to fire event handlers a script registered on widgets.
func (s *Session) Call(ctx context.Context, callee Value, args []Value) (Value, error) {
	callable, ok := callableFrom(callee)
	if !ok {
		return NewNil(), &RuntimeError{Kind: ErrNotCallable, Message: fmt.Sprintf("cannot call %s value", callee.Kind())}
	}
	if arity := callable.Arity(); arity != VariadicArity && len(args) != arity {
		return NewNil(), &RuntimeError{Kind: ErrArityMismatch, Message: fmt.Sprintf("%s expects %d arguments, got %d", callable.String(), arity, len(args))}
	}

	output := s.opts.Output
	if output == nil {
		output = s.engine.config.Output
	}
	exec := &Execution{
		engine: s.engine,
		ctx:    ctx,
		output: output,
		root:   s.root,
		quota:  s.engine.config.StepQuota,
	}
	return callable.Call(exec, args)
}
