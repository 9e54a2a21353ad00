package lambda

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, source string) *Program {
	t.Helper()
	tokens, lexDiags := scanSource(source)
	if len(lexDiags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %v", lexDiags)
	}
	program, diags := parseTokens(tokens)
	if len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	return program
}

func parseDiagnostics(t *testing.T, source string) []Diagnostic {
	t.Helper()
	tokens, lexDiags := scanSource(source)
	_, parseDiags := parseTokens(tokens)
	return append(lexDiags, parseDiags...)
}

func TestParsePrecedence(t *testing.T) {
	program := parseSource(t, "1 + 2 * 3;")
	stmt := program.Statements[0].(*ExprStmt)

	add, ok := stmt.Expr.(*BinaryExpr)
	if !ok || add.Operator != tokenPlus {
		t.Fatalf("expected + at the root, got %T", stmt.Expr)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Operator != tokenAsterisk {
		t.Fatalf("expected * on the right, got %T", add.Right)
	}
	if left := add.Left.(*NumberLiteral); left.Value != 1 {
		t.Fatalf("expected 1 on the left, got %v", left.Value)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	program := parseSource(t, "(1 + 2) * 3;")
	stmt := program.Statements[0].(*ExprStmt)

	mul, ok := stmt.Expr.(*BinaryExpr)
	if !ok || mul.Operator != tokenAsterisk {
		t.Fatalf("expected * at the root, got %T", stmt.Expr)
	}
	if _, ok := mul.Left.(*BinaryExpr); !ok {
		t.Fatalf("expected grouped + on the left, got %T", mul.Left)
	}
}

func TestParseUnaryBindsTighterThanBinary(t *testing.T) {
	program := parseSource(t, "-1 + 2;")
	add := program.Statements[0].(*ExprStmt).Expr.(*BinaryExpr)
	if _, ok := add.Left.(*UnaryExpr); !ok {
		t.Fatalf("expected unary minus on the left, got %T", add.Left)
	}
}

func TestParseVarDeclarations(t *testing.T) {
	program := parseSource(t, `let a = 1; ui w = createWindow("Home"); let b;`)

	a := program.Statements[0].(*VarStmt)
	if a.Name != "a" || a.IsUI {
		t.Fatalf("unexpected let declaration: %+v", a)
	}
	w := program.Statements[1].(*VarStmt)
	if w.Name != "w" || !w.IsUI {
		t.Fatalf("ui declaration not flagged: %+v", w)
	}
	b := program.Statements[2].(*VarStmt)
	if b.Initializer != nil {
		t.Fatalf("expected nil initializer for bare declaration")
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	program := parseSource(t, "a = b = 1;")
	outer := program.Statements[0].(*ExprStmt).Expr.(*AssignExpr)
	if outer.Name != "a" {
		t.Fatalf("expected assignment to a, got %q", outer.Name)
	}
	inner, ok := outer.Value.(*AssignExpr)
	if !ok || inner.Name != "b" {
		t.Fatalf("expected nested assignment to b, got %T", outer.Value)
	}
}

func TestParsePropertyAssignmentBecomesSet(t *testing.T) {
	program := parseSource(t, "p.x = 3;")
	set, ok := program.Statements[0].(*ExprStmt).Expr.(*SetExpr)
	if !ok {
		t.Fatalf("expected set expression, got %T", program.Statements[0].(*ExprStmt).Expr)
	}
	if set.Name != "x" {
		t.Fatalf("expected property x, got %q", set.Name)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	diags := parseDiagnostics(t, "1 + 2 = 3;")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic")
	}
	if !strings.Contains(diags[0].Message, "invalid assignment target") {
		t.Fatalf("unexpected message %q", diags[0].Message)
	}
}

func TestParseClassWithMethods(t *testing.T) {
	program := parseSource(t, `
class Point {
	init(x, y) {
		this.x = x;
		this.y = y;
	}
	move(dx) {
		this.x = this.x + dx;
	}
	static origin() {
		return Point(0, 0);
	}
}`)

	class := program.Statements[0].(*ClassStmt)
	if class.Name != "Point" {
		t.Fatalf("unexpected class name %q", class.Name)
	}
	if len(class.Methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(class.Methods))
	}
	init := class.Methods[0]
	if init.Name != "init" || len(init.Params) != 2 || init.IsStatic {
		t.Fatalf("unexpected init method: %+v", init)
	}
	origin := class.Methods[2]
	if origin.Name != "origin" || !origin.IsStatic {
		t.Fatalf("expected static origin, got %+v", origin)
	}
}

func TestParseIfElse(t *testing.T) {
	program := parseSource(t, `if (a < 1) { print a; } else print b;`)
	stmt := program.Statements[0].(*IfStmt)
	if _, ok := stmt.Condition.(*BinaryExpr); !ok {
		t.Fatalf("expected comparison condition, got %T", stmt.Condition)
	}
	if _, ok := stmt.Then.(*BlockStmt); !ok {
		t.Fatalf("expected block then-branch, got %T", stmt.Then)
	}
	if _, ok := stmt.Else.(*PrintStmt); !ok {
		t.Fatalf("expected print else-branch, got %T", stmt.Else)
	}
}

func TestParseIfRequiresParens(t *testing.T) {
	diags := parseDiagnostics(t, "if a < 1 { print a; }")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for missing parentheses")
	}
}

func TestParseCallChain(t *testing.T) {
	program := parseSource(t, `desktop.add(makeButton("OK"));`)
	call, ok := program.Statements[0].(*ExprStmt).Expr.(*CallExpr)
	if !ok {
		t.Fatalf("expected call, got %T", program.Statements[0].(*ExprStmt).Expr)
	}
	get, ok := call.Callee.(*GetExpr)
	if !ok || get.Name != "add" {
		t.Fatalf("expected property callee, got %T", call.Callee)
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(call.Args))
	}
	if _, ok := call.Args[0].(*CallExpr); !ok {
		t.Fatalf("expected nested call argument, got %T", call.Args[0])
	}
}

func TestParseListLiteral(t *testing.T) {
	program := parseSource(t, `let xs = [1, "two", nil];`)
	list := program.Statements[0].(*VarStmt).Initializer.(*ListLiteral)
	if len(list.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(list.Elements))
	}
}

func TestParseReturnWithoutValue(t *testing.T) {
	program := parseSource(t, `class C { stop() { return; } }`)
	method := program.Statements[0].(*ClassStmt).Methods[0]
	ret := method.Body[0].(*ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("expected bare return, got %T", ret.Value)
	}
}

func TestParseRecoversAfterBadStatement(t *testing.T) {
	tokens, _ := scanSource("let = 1; let ok = 2; print +;")
	program, diags := parseTokens(tokens)
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	// The well-formed middle statement survives recovery.
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 recovered statement, got %d", len(program.Statements))
	}
	ok := program.Statements[0].(*VarStmt)
	if ok.Name != "ok" {
		t.Fatalf("unexpected statement %+v", ok)
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	diags := parseDiagnostics(t, "let a = 1")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, "expected ; after declaration") {
		t.Fatalf("unexpected message %q", diags[0].Message)
	}
}
