package lambda

import "fmt"

// maxParams bounds method parameter lists. Exceeding it is reported but
// parsing continues.
const maxParams = 255

type parseError struct {
	pos Position
	msg string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
}

type parser struct {
	tokens  []Token
	current int
	diags   []Diagnostic
}

// parseTokens turns a token stream into a program plus accumulated syntax
// diagnostics. Recovery is panic-mode: a failed production unwinds to the
// declaration loop, which discards tokens up to the next statement boundary
// and resumes, so a broken statement costs roughly one diagnostic instead
// of a cascade.
func parseTokens(tokens []Token) (*Program, []Diagnostic) {
	p := &parser{tokens: tokens}
	program := &Program{}

	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, p.diags
}

func (p *parser) declaration() (Statement, error) {
	switch {
	case p.match(tokenClass):
		return p.classDeclaration()
	case p.match(tokenUI):
		return p.varDeclaration(true)
	case p.match(tokenLet):
		return p.varDeclaration(false)
	default:
		return p.statement()
	}
}

func (p *parser) varDeclaration(isUI bool) (Statement, error) {
	pos := p.previous().Pos
	name, err := p.consume(tokenIdent, "expected variable name")
	if err != nil {
		return nil, err
	}

	var initializer Expression
	if p.match(tokenAssign) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(tokenSemicolon, "expected ; after declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name.Lexeme, Initializer: initializer, IsUI: isUI, position: pos}, nil
}

func (p *parser) classDeclaration() (Statement, error) {
	pos := p.previous().Pos
	name, err := p.consume(tokenIdent, "expected class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenLBrace, "expected { before class body"); err != nil {
		return nil, err
	}

	var methods []*FunctionStmt
	for !p.check(tokenRBrace) && !p.isAtEnd() {
		method, err := p.method()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.consume(tokenRBrace, "expected } after class body"); err != nil {
		return nil, err
	}
	return &ClassStmt{Name: name.Lexeme, Methods: methods, position: pos}, nil
}

func (p *parser) method() (*FunctionStmt, error) {
	isStatic := p.match(tokenStatic)

	name, err := p.consume(tokenIdent, "expected method name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenLParen, "expected ( after method name"); err != nil {
		return nil, err
	}

	var params []string
	if !p.check(tokenRParen) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.peek(), fmt.Sprintf("cannot have more than %d parameters", maxParams))
			}
			param, err := p.consume(tokenIdent, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)
			if !p.match(tokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(tokenRParen, "expected ) after parameters"); err != nil {
		return nil, err
	}

	if _, err := p.consume(tokenLBrace, "expected { before method body"); err != nil {
		return nil, err
	}
	body, err := p.blockStatements()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{Name: name.Lexeme, Params: params, Body: body, IsStatic: isStatic, position: name.Pos}, nil
}

func (p *parser) statement() (Statement, error) {
	switch {
	case p.match(tokenIf):
		return p.ifStatement()
	case p.match(tokenPrint):
		return p.printStatement()
	case p.match(tokenReturn):
		return p.returnStatement()
	case p.match(tokenLBrace):
		pos := p.previous().Pos
		stmts, err := p.blockStatements()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts, position: pos}, nil
	default:
		return p.expressionStatement()
	}
}

func (p *parser) ifStatement() (Statement, error) {
	pos := p.previous().Pos
	if _, err := p.consume(tokenLParen, "expected ( after if"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenRParen, "expected ) after condition"); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var alternate Statement
	if p.match(tokenElse) {
		alternate, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: condition, Then: then, Else: alternate, position: pos}, nil
}

func (p *parser) printStatement() (Statement, error) {
	pos := p.previous().Pos
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenSemicolon, "expected ; after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr, position: pos}, nil
}

func (p *parser) returnStatement() (Statement, error) {
	pos := p.previous().Pos
	var value Expression
	if !p.check(tokenSemicolon) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(tokenSemicolon, "expected ; after return value"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value, position: pos}, nil
}

// blockStatements parses declarations until the closing brace. The opening
// brace has already been consumed.
func (p *parser) blockStatements() ([]Statement, error) {
	var stmts []Statement
	for !p.check(tokenRBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(tokenRBrace, "expected } after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) expressionStatement() (Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenSemicolon, "expected ; after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr, position: expr.Pos()}, nil
}

func (p *parser) expression() (Expression, error) {
	return p.assignment()
}

// assignment is right-associative and only legal when the left-hand side
// parsed as a variable or property access. Anything else is a syntax error
// here, not a runtime fault.
func (p *parser) assignment() (Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(tokenAssign) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *Identifier:
			return &AssignExpr{Name: target.Name, Value: value, position: target.Pos()}, nil
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value, position: target.Pos()}, nil
		default:
			return nil, p.errorAt(equals, "invalid assignment target")
		}
	}

	return expr, nil
}

func (p *parser) equality() (Expression, error) {
	return p.binary(p.comparison, tokenEQ, tokenNotEQ)
}

func (p *parser) comparison() (Expression, error) {
	return p.binary(p.term, tokenLT, tokenLTE, tokenGT, tokenGTE)
}

func (p *parser) term() (Expression, error) {
	return p.binary(p.factor, tokenPlus, tokenMinus)
}

func (p *parser) factor() (Expression, error) {
	return p.binary(p.unary, tokenAsterisk, tokenSlash)
}

// binary parses a left-associative run of operators at one precedence
// level, delegating operands to the next-higher level.
func (p *parser) binary(operand func() (Expression, error), operators ...TokenType) (Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op.Type, Right: right, position: op.Pos}
	}
	return expr, nil
}

func (p *parser) unary() (Expression, error) {
	if p.match(tokenBang, tokenMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op.Type, Right: right, position: op.Pos}, nil
	}
	return p.call()
}

func (p *parser) call() (Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(tokenLParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(tokenDot):
			name, err := p.consume(tokenIdent, "expected property name after .")
			if err != nil {
				return nil, err
			}
			expr = &GetExpr{Object: expr, Name: name.Lexeme, position: name.Pos}
		default:
			return expr, nil
		}
	}
}

func (p *parser) finishCall(callee Expression) (Expression, error) {
	pos := p.previous().Pos
	var args []Expression
	if !p.check(tokenRParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(tokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(tokenRParen, "expected ) after arguments"); err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Args: args, position: pos}, nil
}

func (p *parser) primary() (Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case tokenNumber:
		p.advance()
		value, _ := tok.Literal.(float64)
		return &NumberLiteral{Value: value, position: tok.Pos}, nil
	case tokenString:
		p.advance()
		value, _ := tok.Literal.(string)
		return &StringLiteral{Value: value, position: tok.Pos}, nil
	case tokenTrue, tokenFalse:
		p.advance()
		return &BoolLiteral{Value: tok.Type == tokenTrue, position: tok.Pos}, nil
	case tokenNil:
		p.advance()
		return &NilLiteral{position: tok.Pos}, nil
	case tokenThis:
		p.advance()
		return &ThisExpr{position: tok.Pos}, nil
	case tokenIdent:
		p.advance()
		return &Identifier{Name: tok.Lexeme, position: tok.Pos}, nil
	case tokenLParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokenRParen, "expected ) after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case tokenLBracket:
		return p.listLiteral()
	default:
		return nil, p.errorAt(tok, fmt.Sprintf("unexpected token %s", describeToken(tok)))
	}
}

func (p *parser) listLiteral() (Expression, error) {
	pos := p.peek().Pos
	p.advance()

	var elements []Expression
	if !p.check(tokenRBracket) {
		for {
			el, err := p.expression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if !p.match(tokenComma) {
				break
			}
		}
	}
	if _, err := p.consume(tokenRBracket, "expected ] after list elements"); err != nil {
		return nil, err
	}
	return &ListLiteral{Elements: elements, position: pos}, nil
}

// synchronize discards tokens until just past a statement terminator or at
// a token that can begin a new declaration.
func (p *parser) synchronize() {
	for !p.isAtEnd() {
		if p.advance().Type == tokenSemicolon {
			return
		}
		switch p.peek().Type {
		case tokenClass, tokenUI, tokenLet, tokenIf, tokenPrint, tokenReturn:
			return
		}
	}
}

func (p *parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *parser) consume(tt TokenType, message string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), fmt.Sprintf("%s, got %s", message, describeToken(p.peek())))
}

func (p *parser) advance() Token {
	tok := p.tokens[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.tokens[p.current].Type == tokenEOF
}

func (p *parser) errorAt(tok Token, message string) error {
	p.diags = append(p.diags, errorDiagnostic(tok.Pos, message))
	return &parseError{pos: tok.Pos, msg: message}
}

func describeToken(tok Token) string {
	if tok.Type == tokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
