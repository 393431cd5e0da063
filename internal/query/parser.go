package query

import "strings"

// parser is a recursive-descent parser over the raw query bytes. Every
// recognized character is ASCII, so scanning bytes is safe for UTF-8 input.
type parser struct {
	input string
	pos   int
}

// Parse parses a search query into an expression tree.
//
// Adjacent terms combine with implicit AND; " | " (spaces required) combines
// with OR; "-" negates the factor that follows. Quoted strings use ' or "
// with the quote doubled to escape itself. Anything else is a literal, which
// ends at a space or parenthesis.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	p.skipSpace()
	expr, ok := p.parseOrTerms()
	if !ok {
		return nil, &SyntaxError{Offset: p.pos, Remaining: input[p.pos:]}
	}
	p.skipSpace()
	if p.pos < len(input) {
		return nil, &IncompleteParseError{Remainder: input[p.pos:], Partial: expr}
	}
	return expr, nil
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// skipSpace1 consumes spaces and reports whether at least one was consumed.
func (p *parser) skipSpace1() bool {
	start := p.pos
	p.skipSpace()
	return p.pos > start
}

// parseString parses a quoted string. The quote character escapes itself by
// doubling; there are no backslash escapes. Fails without consuming input if
// the closing quote is missing.
func (p *parser) parseString() (string, bool) {
	start := p.pos
	if p.pos >= len(p.input) {
		return "", false
	}
	quote := p.input[p.pos]
	if quote != '\'' && quote != '"' {
		return "", false
	}
	p.pos++
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c != quote {
			b.WriteByte(c)
			p.pos++
			continue
		}
		if p.pos+1 < len(p.input) && p.input[p.pos+1] == quote {
			b.WriteByte(quote)
			p.pos += 2
			continue
		}
		p.pos++
		return b.String(), true
	}
	p.pos = start
	return "", false
}

// parseLiteral parses an unquoted word. The first character may not be a
// quote, minus, space, or parenthesis; later characters end the word only at
// a space or parenthesis, so literals may contain ':', '-', and quotes.
func (p *parser) parseLiteral() (string, bool) {
	start := p.pos
	if p.pos >= len(p.input) {
		return "", false
	}
	switch p.input[p.pos] {
	case '"', '\'', ' ', '-', '(', ')':
		return "", false
	}
	p.pos++
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ' ' || c == '(' || c == ')' {
			break
		}
		p.pos++
	}
	name := p.input[start:p.pos]
	// a bare | is the OR operator, not a tag
	if name == "|" {
		p.pos = start
		return "", false
	}
	return name, true
}

func (p *parser) parseStringOrLiteral() (string, bool) {
	if s, ok := p.parseString(); ok {
		return s, true
	}
	return p.parseLiteral()
}

// parseKeyVal parses key:value for a recognized key. On any failure the
// position is restored so the caller can re-parse the same text as a tag.
func (p *parser) parseKeyVal() (Expr, bool) {
	start := p.pos
	rest := p.input[p.pos:]
	for _, kn := range keyNames {
		if !strings.HasPrefix(rest, kn.name) || !strings.HasPrefix(rest[len(kn.name):], ":") {
			continue
		}
		p.pos += len(kn.name) + 1
		v, ok := p.parseStringOrLiteral()
		if !ok {
			p.pos = start
			return nil, false
		}
		return KeyValue{Key: kn.key, Value: v}, true
	}
	return nil, false
}

func (p *parser) parseParens() (Expr, bool) {
	start := p.pos
	if p.pos >= len(p.input) || p.input[p.pos] != '(' {
		return nil, false
	}
	p.pos++
	p.skipSpace()
	expr, ok := p.parseOrTerms()
	if !ok {
		p.pos = start
		return nil, false
	}
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != ')' {
		p.pos = start
		return nil, false
	}
	p.pos++
	return expr, true
}

func (p *parser) parseUnsignedFactor() (Expr, bool) {
	if expr, ok := p.parseParens(); ok {
		return expr, true
	}
	if expr, ok := p.parseKeyVal(); ok {
		return expr, true
	}
	if name, ok := p.parseStringOrLiteral(); ok {
		return Tag{Name: name}, true
	}
	return nil, false
}

func (p *parser) parseFactor() (Expr, bool) {
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
		p.skipSpace()
		if inner, ok := p.parseUnsignedFactor(); ok {
			return Not{Child: inner}, true
		}
		p.pos = start
	}
	return p.parseUnsignedFactor()
}

// parseAndTerms parses factors separated by optional spaces. AND binds
// tighter than OR.
func (p *parser) parseAndTerms() (Expr, bool) {
	first, ok := p.parseFactor()
	if !ok {
		return nil, false
	}
	terms := []Expr{first}
	for {
		save := p.pos
		p.skipSpace()
		next, ok := p.parseFactor()
		if !ok {
			p.pos = save
			break
		}
		terms = append(terms, next)
	}
	return newAnd(terms), true
}

// parseOrTerms parses and-groups separated by "|" with at least one space on
// each side. "a|b" is a single literal, not an OR.
func (p *parser) parseOrTerms() (Expr, bool) {
	first, ok := p.parseAndTerms()
	if !ok {
		return nil, false
	}
	terms := []Expr{first}
	for {
		save := p.pos
		if !p.skipSpace1() {
			break
		}
		if p.pos >= len(p.input) || p.input[p.pos] != '|' {
			p.pos = save
			break
		}
		p.pos++
		if !p.skipSpace1() {
			p.pos = save
			break
		}
		next, ok := p.parseAndTerms()
		if !ok {
			p.pos = save
			break
		}
		terms = append(terms, next)
	}
	return newOr(terms), true
}
