package surface

import "holcore/logging"

// Parser is a hand-rolled recursive-descent parser over a Lexer's token
// stream, one token of lookahead.
type Parser struct {
	lex *Lexer
	ctx *logging.Context
	buf []*Token
}

// NewParser creates a parser reading from lex, reporting diagnostics under ctx.
func NewParser(lex *Lexer, ctx *logging.Context) *Parser {
	return &Parser{lex: lex, ctx: ctx}
}

func (p *Parser) peek(n int) *Token {
	for len(p.buf) <= n {
		p.buf = append(p.buf, p.lex.Next())
	}
	return p.buf[n]
}

func (p *Parser) cur() *Token { return p.peek(0) }

func (p *Parser) advance() *Token {
	t := p.peek(0)
	p.buf = p.buf[1:]
	return t
}

func (p *Parser) errPos(t *Token) *logging.Position {
	return &logging.Position{FilePath: p.ctx.FilePath, StartLn: t.Line, StartCol: t.Col, EndLn: t.Line, EndCol: t.Col}
}

func (p *Parser) expect(kind int, what string) *Token {
	t := p.advance()
	if t.Kind != kind {
		logging.LogKernelError(p.ctx, "expected "+what, logging.KindSyntax, p.errPos(t))
	}
	return t
}

// ParseFile parses an entire theory file into its statement list.
func (p *Parser) ParseFile() *File {
	var stmts []Stmt
	for p.cur().Kind != TokEOF {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return &File{Statements: stmts}
}

func (p *Parser) parseStmt() Stmt {
	switch p.cur().Kind {
	case TokStatic:
		return p.parseStatic()
	case TokDef:
		return p.parseDef()
	case TokRule:
		return p.parseRule()
	case TokCheck:
		return p.parseCheck(true)
	case TokCheckFail:
		return p.parseCheck(false)
	default:
		t := p.advance()
		logging.LogKernelError(p.ctx, "expected a statement", logging.KindSyntax, p.errPos(t))
		return nil
	}
}

func (p *Parser) parseStatic() Stmt {
	p.advance() // "static"
	name := p.expect(TokIdent, "a symbol name").Value
	p.expect(TokColon, "':'")
	typ := p.parseExpr()
	p.expect(TokDot, "'.'")
	return &StaticStmt{Name: name, Type: typ}
}

func (p *Parser) parseDef() Stmt {
	p.advance() // "def"
	name := p.expect(TokIdent, "a symbol name").Value
	p.expect(TokColon, "':'")
	typ := p.parseExpr()

	var body Expr
	if p.cur().Kind == TokColonEq {
		p.advance()
		body = p.parseExpr()
	}
	p.expect(TokDot, "'.'")
	return &DefStmt{Name: name, Type: typ, Body: body}
}

func (p *Parser) parseRule() Stmt {
	p.advance() // "rule"
	lhs := p.parseExpr()
	p.expect(TokArrowRule, "'-->'")
	rhs := p.parseExpr()
	p.expect(TokDot, "'.'")
	return &RuleStmt{LHS: lhs, RHS: rhs}
}

func (p *Parser) parseCheck(expectOK bool) Stmt {
	p.advance() // "#check" or "#check-fail"
	left := p.parseExpr()
	p.expect(TokEqEq, "'=='")
	right := p.parseExpr()
	p.expect(TokDot, "'.'")
	return &CheckStmt{Left: left, Right: right, ExpectOK: expectOK}
}

// parseExpr parses a full term: a λ-abstraction, a Π-product, or an
// arrow/application term. λ and Π each consume their own trailing '.'
// themselves before returning, so that separator never competes with the
// statement terminator the caller above is waiting for.
func (p *Parser) parseExpr() Expr {
	switch p.cur().Kind {
	case TokLambda:
		p.advance()
		name := p.expect(TokIdent, "a bound variable name").Value
		p.expect(TokColon, "':'")
		dom := p.parseArrow()
		p.expect(TokDot, "'.'")
		return &LambdaExpr{Name: name, Dom: dom, Body: p.parseExpr()}

	case TokPi:
		p.advance()
		name := p.expect(TokIdent, "a bound variable name").Value
		p.expect(TokColon, "':'")
		dom := p.parseArrow()
		p.expect(TokDot, "'.'")
		return &PiExpr{Name: name, Dom: dom, Body: p.parseExpr()}

	default:
		return p.parseArrow()
	}
}

// parseArrow parses the non-dependent product sugar `A -> B`, right
// associative, over application-level terms.
func (p *Parser) parseArrow() Expr {
	dom := p.parseApp()
	if p.cur().Kind == TokArrowFun {
		p.advance()
		return &PiExpr{Name: "_", Dom: dom, Body: p.parseExpr()}
	}
	return dom
}

// parseApp parses left-associative juxtaposition application over atoms.
func (p *Parser) parseApp() Expr {
	fn := p.parseAtom()
	for isAtomStart(p.cur().Kind) {
		fn = &AppExpr{Fun: fn, Arg: p.parseAtom()}
	}
	return fn
}

func isAtomStart(kind int) bool {
	switch kind {
	case TokIdent, TokUnderscore, TokType, TokKind, TokLParen:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtom() Expr {
	switch p.cur().Kind {
	case TokType:
		p.advance()
		return &SortExpr{IsKind: false}
	case TokKind:
		p.advance()
		return &SortExpr{IsKind: true}
	case TokUnderscore:
		p.advance()
		return &Underscore{}
	case TokIdent:
		return &Ident{Name: p.advance().Value}
	case TokLParen:
		p.advance()
		e := p.parseExpr()
		p.expect(TokRParen, "')'")
		return e
	default:
		t := p.advance()
		logging.LogKernelError(p.ctx, "expected a term", logging.KindSyntax, p.errPos(t))
		return &Ident{Name: "<error>"}
	}
}
