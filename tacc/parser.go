package tacc

// operatorPrecedence ranks binary operators for precedence climbing;
// higher binds tighter. Relational operators (15) bind tighter than + -
// (10) here, an inversion from the usual C-family precedence table that
// this parser preserves faithfully.
var operatorPrecedence = map[string]int{
	"||": 3, "&&": 3,
	"==": 5, "!=": 5,
	"+": 10, "-": 10,
	"<": 15, ">": 15, "<=": 15, ">=": 15,
	"*": 20, "/": 20, "%": 20,
}

var tokenToBinaryOp = map[string]BinaryOp{
	"+": Add, "-": Subtract, "*": Multiply, "/": Divide, "%": Modulo,
	"<": LessThan, ">": GreaterThan, "==": Equal, "!=": NotEqual,
	"&&": And, "||": Or,
}

// Parser turns a flat token stream into an AST and then runs semantic
// analysis over it: SetTokens resets the cursor, and Parse both builds
// the tree and checks it before returning.
type Parser struct {
	tokens []Token
	index  int
}

// NewParser returns a Parser with no tokens set; call SetTokens before
// Parse.
func NewParser() *Parser {
	return &Parser{}
}

// SetTokens resets the parser to scan tokens from the beginning.
func (p *Parser) SetTokens(tokens []Token) {
	p.tokens = tokens
	p.index = 0
}

// Parse builds the AST from every top-level statement up to EndOfFile and
// runs a fresh semantic check over it. A lone statement is the root itself;
// several are wrapped in a Block. Any syntax or semantic problem aborts
// immediately with no recovery.
func (p *Parser) Parse() (Statement, error) {
	root, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if p.currentToken().Type != EndOfFile {
		statements := []Statement{root}
		for p.currentToken().Type != EndOfFile {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
		}
		root = &Block{Statements: statements}
	}

	if err := NewChecker().Check(root); err != nil {
		return nil, err
	}

	return root, nil
}

// currentToken returns the token under the cursor, or a synthetic
// zero-position EndOfFile token once the cursor runs past the end of the
// slice — matching Parser::currentToken in the original, which never
// indexes out of bounds.
func (p *Parser) currentToken() Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	return Token{Type: EndOfFile}
}

func (p *Parser) advance() {
	if p.index < len(p.tokens) {
		p.index++
	}
}

func (p *Parser) isSeparator(lexeme string) bool {
	tok := p.currentToken()
	return tok.Type == Separator && tok.Lexeme == lexeme
}

func (p *Parser) isKeyword(lexeme string) bool {
	tok := p.currentToken()
	return tok.Type == Keyword && tok.Lexeme == lexeme
}

func (p *Parser) isOperator(lexeme string) bool {
	tok := p.currentToken()
	return tok.Type == Operator && tok.Lexeme == lexeme
}

func (p *Parser) expectSeparator(lexeme, context string) error {
	if !p.isSeparator(lexeme) {
		return newParseError(p.currentToken().Position, "Expected '%s' %s, found %s", lexeme, context, p.currentToken())
	}
	p.advance()
	return nil
}

func (p *Parser) parseStatement() (Statement, error) {
	tok := p.currentToken()

	if tok.Type == Separator && tok.Lexeme == "{" {
		return p.parseBlock()
	}

	if tok.Type == Keyword {
		switch tok.Lexeme {
		case "int", "float", "char", "std::string":
			return p.parseVariableOrFunctionDeclaration()
		case "return":
			return p.parseReturn()
		case "if":
			return p.parseIf()
		}
	}

	if tok.Type == Identifier {
		return p.parseAssignmentOrCall()
	}

	return nil, newParseError(tok.Position, "Unexpected token: %s", tok)
}

func (p *Parser) parseBlock() (*Block, error) {
	p.advance() // skip '{'

	var statements []Statement
	for !p.isSeparator("}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	p.advance() // skip '}'
	return &Block{Statements: statements}, nil
}

// parseVariableOrFunctionDeclaration parses "type name" and then
// dispatches to a variable declaration or, if a '(' follows the name, a
// function declaration.
func (p *Parser) parseVariableOrFunctionDeclaration() (Statement, error) {
	typeName := p.currentToken().Lexeme
	p.advance()

	if p.currentToken().Type != Identifier {
		return nil, newParseError(p.currentToken().Position,
			"Expected identifier after type in declaration, found %s", p.currentToken())
	}
	name := p.currentToken().Lexeme
	p.advance()

	if p.isSeparator("(") {
		return p.parseFunctionDeclaration(typeName, name)
	}

	var initializer Expression
	if p.isOperator("=") {
		p.advance()
		var err error
		initializer, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectSeparator(";", "after variable declaration"); err != nil {
		return nil, err
	}

	return &VariableDeclaration{Type: typeName, Name: name, Initializer: initializer}, nil
}

// parseFunctionDeclaration parses the parameter list and body following
// "type name(". Parameter types and names both accept an Identifier
// token or any Keyword token — the lexer classifies int,
// float, char, and std::string as Keyword, so requiring Identifier alone
// would reject every function using a primitive parameter type.
func (p *Parser) parseFunctionDeclaration(returnType, name string) (*FunctionDeclaration, error) {
	p.advance() // skip '('

	var parameters []string
	for !p.isSeparator(")") {
		if !p.isParameterTypeToken(p.currentToken()) {
			return nil, newParseError(p.currentToken().Position,
				"Expected parameter type in function declaration, found %s", p.currentToken())
		}
		paramType := p.currentToken().Lexeme
		p.advance()

		if !p.isParameterTypeToken(p.currentToken()) {
			return nil, newParseError(p.currentToken().Position,
				"Expected parameter name after type in function declaration, found %s", p.currentToken())
		}
		paramName := p.currentToken().Lexeme
		p.advance()

		parameters = append(parameters, paramType+" "+paramName)

		if p.isSeparator(",") {
			p.advance()
		} else {
			break
		}
	}

	if err := p.expectSeparator(")", "after function parameters"); err != nil {
		return nil, err
	}
	if err := p.expectSeparator("{", "at the beginning of function body"); err != nil {
		return nil, err
	}

	var body []Statement
	for !p.isSeparator("}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.advance() // skip '}'

	return &FunctionDeclaration{ReturnType: returnType, Name: name, Parameters: parameters, Body: body}, nil
}

func (p *Parser) isParameterTypeToken(tok Token) bool {
	return tok.Type == Identifier || tok.Type == Keyword
}

func (p *Parser) parseIf() (*If, error) {
	p.advance() // skip 'if'

	if err := p.expectSeparator("(", "after 'if'"); err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expectSeparator(")", "after 'if' condition"); err != nil {
		return nil, err
	}

	thenBranch, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	var elseBranch Statement
	if p.isKeyword("else") {
		p.advance()
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &If{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

// parseReturn always parses an expression — a bare "return;" is rejected
// even though the AST itself supports an empty Return.
func (p *Parser) parseReturn() (*Return, error) {
	p.advance() // skip 'return'

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expectSeparator(";", "after return statement"); err != nil {
		return nil, err
	}

	return &Return{Value: value}, nil
}

func (p *Parser) parseAssignmentOrCall() (Statement, error) {
	name := p.currentToken().Lexeme
	pos := p.currentToken().Position
	p.advance()

	if p.isOperator("=") {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectSeparator(";", "after assignment"); err != nil {
			return nil, err
		}
		return &Assignment{Name: name, Value: value}, nil
	}

	if p.isSeparator("(") {
		return nil, newParseError(pos, "Function calls not yet supported.")
	}

	return nil, newParseError(p.currentToken().Position, "Unexpected token after identifier: %s", p.currentToken())
}

func (p *Parser) parseExpression() (Expression, error) {
	return p.parseBinaryExpression(0)
}

func (p *Parser) parsePrimaryExpression() (Expression, error) {
	tok := p.currentToken()

	switch tok.Type {
	case NumberLiteral, FloatingPointLiteral, StringLiteral, CharacterLiteral:
		p.advance()
		return &Literal{Lexeme: tok.Lexeme}, nil
	case Identifier:
		p.advance()
		return &Variable{Name: tok.Lexeme}, nil
	}

	return nil, newParseError(tok.Position, "Unexpected token in expression: %s", tok)
}

// parseBinaryExpression implements precedence climbing: it parses one
// primary operand, then repeatedly consumes an operator whose precedence
// is at least minPrecedence, recursing with that operator's precedence+1 so every
// operator binds left-associatively.
func (p *Parser) parseBinaryExpression(minPrecedence int) (Expression, error) {
	left, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.currentToken()
		precedence, isOperator := operatorPrecedence[tok.Lexeme]
		if tok.Type != Operator || !isOperator || precedence < minPrecedence {
			return left, nil
		}

		op, ok := tokenToBinaryOp[tok.Lexeme]
		if !ok {
			return nil, newParseError(tok.Position, "Unknown binary operator: %s", tok)
		}
		p.advance()

		right, err := p.parseBinaryExpression(precedence + 1)
		if err != nil {
			return nil, err
		}

		left = &Binary{Left: left, Op: op, Right: right}
	}
}
