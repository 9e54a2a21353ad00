package lambda

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"

	tokenAssign   TokenType = "="
	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenBang     TokenType = "!"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
	tokenLT       TokenType = "<"
	tokenGT       TokenType = ">"
	tokenLTE      TokenType = "<="
	tokenGTE      TokenType = ">="
	tokenEQ       TokenType = "=="
	tokenNotEQ    TokenType = "!="

	tokenComma     TokenType = ","
	tokenDot       TokenType = "."
	tokenSemicolon TokenType = ";"
	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenLBracket  TokenType = "["
	tokenRBracket  TokenType = "]"

	tokenLet    TokenType = "LET"
	tokenUI     TokenType = "UI"
	tokenPrint  TokenType = "PRINT"
	tokenClass  TokenType = "CLASS"
	tokenStatic TokenType = "STATIC"
	tokenThis   TokenType = "THIS"
	tokenIf     TokenType = "IF"
	tokenElse   TokenType = "ELSE"
	tokenReturn TokenType = "RETURN"
	tokenTrue   TokenType = "TRUE"
	tokenFalse  TokenType = "FALSE"
	tokenNil    TokenType = "NIL"
)

// Token captures lexical information for the parser. Tokens are immutable
// once produced.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // string for STRING, float64 for NUMBER, otherwise nil
	Pos     Position
}

// Position identifies a 1-based line and 0-based column in the source file.
type Position struct {
	Line   int
	Column int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "let":
		return tokenLet
	case "ui":
		return tokenUI
	case "print":
		return tokenPrint
	case "class":
		return tokenClass
	case "static":
		return tokenStatic
	case "this":
		return tokenThis
	case "if":
		return tokenIf
	case "else":
		return tokenElse
	case "return":
		return tokenReturn
	case "true":
		return tokenTrue
	case "false":
		return tokenFalse
	case "nil":
		return tokenNil
	}
	return tokenIdent
}
