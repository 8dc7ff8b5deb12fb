package parser

import (
	"fmt"
	"strconv"

	"github.com/ntk221/monkey/ast"
	"github.com/ntk221/monkey/lexer"
	"github.com/ntk221/monkey/token"
)

// 結合力の強さ。下にあるものほど強く結びつく
const (
	_ int = iota
	LOWEST
	EQUALS      // ==
	LESSGREATER // > または <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X または !X
	CALL        // myFunction(X)
)

// precedenceOf は中置の位置に現れたトークンの優先順位を返す
func precedenceOf(t token.TokenType) int {
	switch t {
	case token.EQ, token.NOT_EQ:
		return EQUALS
	case token.LT, token.GT, token.LT_EQ, token.GT_EQ:
		return LESSGREATER
	case token.PLUS, token.MINUS:
		return SUM
	case token.ASTERISK, token.SLASH:
		return PRODUCT
	case token.LPAREN:
		return CALL
	default:
		return LOWEST
	}
}

// prefixRule はトークンが式の先頭に現れたときにどの構文解析を行うかを表す
type prefixRule int

const (
	_ prefixRule = iota
	prefixIdentifier
	prefixInteger
	prefixBoolean
	prefixOperator
	prefixGrouped
	prefixIf
	prefixFunction
)

var prefixRules = map[token.TokenType]prefixRule{
	token.IDENT:    prefixIdentifier,
	token.INT:      prefixInteger,
	token.TRUE:     prefixBoolean,
	token.FALSE:    prefixBoolean,
	token.BANG:     prefixOperator,
	token.MINUS:    prefixOperator,
	token.LPAREN:   prefixGrouped,
	token.IF:       prefixIf,
	token.FUNCTION: prefixFunction,
}

// infixRule はトークンが式の後ろに続いたときにどの構文解析を行うかを表す
type infixRule int

const (
	_ infixRule = iota
	infixOperator
	infixCall
)

var infixRules = map[token.TokenType]infixRule{
	token.PLUS:     infixOperator,
	token.MINUS:    infixOperator,
	token.ASTERISK: infixOperator,
	token.SLASH:    infixOperator,
	token.EQ:       infixOperator,
	token.NOT_EQ:   infixOperator,
	token.LT:       infixOperator,
	token.GT:       infixOperator,
	token.LT_EQ:    infixOperator,
	token.GT_EQ:    infixOperator,
	token.LPAREN:   infixCall,
}

type Parser struct {
	l      *lexer.Lexer // このインスタンスのNextToken()を繰り返し呼んで、入力から次のトークンを取得する
	errors []string

	curToken  token.Token // Parserが現在読んでいるトークン
	peekToken token.Token // Parserが次に読むトークン
}

// Lexerを読み込んで、対応するParserを生成する
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	// 二つトークンを読み込む。これでcurTokenとpeekTokenの両方がセットされる
	p.nextToken()
	p.nextToken()

	return p
}

func NewFromString(input string) *Parser {
	return New(lexer.New(input))
}

// Errors は構文解析中に見つかったエラーを見つかった順に返す
func (p *Parser) Errors() []string {
	return p.errors
}

// Err はエラーがあればErrorListとして返す。なければnil
func (p *Parser) Err() error {
	if len(p.errors) == 0 {
		return nil
	}
	return ErrorList(append([]string(nil), p.errors...))
}

// Parserが現在読んでいるところと次に読むところを一つずつ進める
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram は入力をEOFまで読み、文の列をProgramにまとめる。
// 解析に失敗した文は読み飛ばしてエラーに記録し、続きの文の解析を続ける。
// 文が一つもなくエラーもない(空の入力)ときだけnilを返す
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	if len(program.Statements) == 0 && len(p.errors) == 0 {
		return nil
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	// ; や } が続くなら値のないreturn
	if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()

		stmt.ReturnValue = p.parseExpression(LOWEST)
		if stmt.ReturnValue == nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

// 式文のセミコロンは省略できる。REPLで 5 + 5 と打てるようにするため
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.errors = append(p.errors, fmt.Sprintf("expected next token to be %s, got %s instead",
				token.RBRACE, token.EOF))
			return nil
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

// parseExpression はPratt構文解析の本体。
// precedenceより強く結びつく中置演算子が続く限り、左側の式を畳み込んでいく
func (p *Parser) parseExpression(precedence int) ast.Expression {
	rule, ok := prefixRules[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := p.parsePrefix(rule)

	for leftExp != nil && !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		rule, ok := infixRules[p.peekToken.Type]
		if !ok {
			return leftExp
		}

		p.nextToken()

		leftExp = p.parseInfix(rule, leftExp)
	}

	return leftExp
}

func (p *Parser) parsePrefix(rule prefixRule) ast.Expression {
	switch rule {
	case prefixIdentifier:
		return p.parseIdentifier()
	case prefixInteger:
		return p.parseIntegerLiteral()
	case prefixBoolean:
		return p.parseBoolean()
	case prefixOperator:
		return p.parsePrefixExpression()
	case prefixGrouped:
		return p.parseGroupedExpression()
	case prefixIf:
		return p.parseIfExpression()
	case prefixFunction:
		return p.parseFunctionLiteral()
	default:
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseInfix(rule infixRule, left ast.Expression) ast.Expression {
	switch rule {
	case infixOperator:
		return p.parseInfixExpression(left)
	case infixCall:
		return p.parseCallExpression(left)
	default:
		return left
	}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", p.curToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()

	// 同じ優先順位の演算子は左に結合する
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)
	if expression.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()
	if expression.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
		if expression.Alternative == nil {
			return nil
		}
	}

	return expression
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	lit.Parameters = params

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()
	if lit.Body == nil {
		return nil
	}
	return lit
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers, true
	}

	if !p.expectPeek(token.IDENT) {
		return nil, false
	}
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return identifiers, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}

	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	exp.Arguments = args
	return exp
}

func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}

// トークンタイプを入力すると、現在Parserが読んでいるトークンのタイプと一致しているか判定する
func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

// 上のpeekTokenバージョン
func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// 次のトークンの型がtなら読み進めてtrueを返す。違えばエラーを記録してfalseを返す
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	} else {
		p.peekError(t)
		return false
	}
}

func (p *Parser) peekError(t token.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead",
		t, p.peekToken.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	msg := fmt.Sprintf("no prefix parse function for %s found", t)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() int {
	return precedenceOf(p.peekToken.Type)
}

func (p *Parser) curPrecedence() int {
	return precedenceOf(p.curToken.Type)
}
