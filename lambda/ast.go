package lambda

type Node interface {
	Pos() Position
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

type ExprStmt struct {
	Expr     Expression
	position Position
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.position }

type PrintStmt struct {
	Expr     Expression
	position Position
}

func (s *PrintStmt) stmtNode()     {}
func (s *PrintStmt) Pos() Position { return s.position }

// VarStmt declares a binding. "ui" declarations share this node: the
// distinct keyword carries no runtime meaning beyond marking intent.
type VarStmt struct {
	Name        string
	Initializer Expression // nil means the binding starts as nil
	IsUI        bool
	position    Position
}

func (s *VarStmt) stmtNode()     {}
func (s *VarStmt) Pos() Position { return s.position }

type BlockStmt struct {
	Statements []Statement
	position   Position
}

func (s *BlockStmt) stmtNode()     {}
func (s *BlockStmt) Pos() Position { return s.position }

type IfStmt struct {
	Condition Expression
	Then      Statement
	Else      Statement // nil when absent
	position  Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.position }

// FunctionStmt is both a method declaration inside a class body and the
// shape bound methods close over. A method named "init" acts as the
// constructor; IsStatic routes the method to the class-level table.
type FunctionStmt struct {
	Name     string
	Params   []string
	Body     []Statement
	IsStatic bool
	position Position
}

func (s *FunctionStmt) stmtNode()     {}
func (s *FunctionStmt) Pos() Position { return s.position }

type ClassStmt struct {
	Name     string
	Methods  []*FunctionStmt
	position Position
}

func (s *ClassStmt) stmtNode()     {}
func (s *ClassStmt) Pos() Position { return s.position }

type ReturnStmt struct {
	Value    Expression // nil returns nil
	position Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.position }

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type NumberLiteral struct {
	Value    float64
	position Position
}

func (e *NumberLiteral) exprNode()     {}
func (e *NumberLiteral) Pos() Position { return e.position }

type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

type BoolLiteral struct {
	Value    bool
	position Position
}

func (e *BoolLiteral) exprNode()     {}
func (e *BoolLiteral) Pos() Position { return e.position }

type NilLiteral struct {
	position Position
}

func (e *NilLiteral) exprNode()     {}
func (e *NilLiteral) Pos() Position { return e.position }

type ListLiteral struct {
	Elements []Expression
	position Position
}

func (e *ListLiteral) exprNode()     {}
func (e *ListLiteral) Pos() Position { return e.position }

type AssignExpr struct {
	Name     string
	Value    Expression
	position Position
}

func (e *AssignExpr) exprNode()     {}
func (e *AssignExpr) Pos() Position { return e.position }

type UnaryExpr struct {
	Operator TokenType
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type CallExpr struct {
	Callee   Expression
	Args     []Expression
	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

type GetExpr struct {
	Object   Expression
	Name     string
	position Position
}

func (e *GetExpr) exprNode()     {}
func (e *GetExpr) Pos() Position { return e.position }

type SetExpr struct {
	Object   Expression
	Name     string
	Value    Expression
	position Position
}

func (e *SetExpr) exprNode()     {}
func (e *SetExpr) Pos() Position { return e.position }

type ThisExpr struct {
	position Position
}

func (e *ThisExpr) exprNode()     {}
func (e *ThisExpr) Pos() Position { return e.position }
