package parser

import (
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/syntax"
	"pyprojectfmt/internal/token"
)

type Options struct {
	// MaxErrors caps the number of collected diagnostics; 0 means 32.
	MaxErrors int
}

func (o Options) withDefaults() Options {
	if o.MaxErrors <= 0 {
		o.MaxErrors = 32
	}
	return o
}

type Result struct {
	Tree *syntax.Tree
	Bag  *diag.Bag
}

// Parser - состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	tree     *syntax.Tree
	rep      *countingReporter
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile - входная точка для разбора одного файла.
// Дерево всегда строится; при ошибках Bag содержит диагностики.
func ParseFile(file *source.File, opts Options) Result {
	opts = opts.withDefaults()
	bag := diag.NewBag(opts.MaxErrors)
	rep := &countingReporter{next: diag.BagReporter{Bag: bag}}
	p := Parser{
		lx:   lexer.New(file, lexer.Options{Reporter: rep}),
		tree: syntax.New(),
		rep:  rep,
	}
	p.parseRoot()
	bag.Sort()
	bag.Dedup()
	return Result{Tree: p.tree, Bag: bag}
}

// Parse разбирает текст документа; любая диагностика уровня error
// превращается в *ParseError.
func Parse(content string) (*syntax.Tree, error) {
	return ParseSource(source.Virtual("pyproject.toml", content))
}

// ParseSource is Parse for an already loaded file; diagnostics carry its path.
func ParseSource(file *source.File) (*syntax.Tree, error) {
	res := ParseFile(file, Options{})
	if res.Bag.HasErrors() {
		return nil, &ParseError{File: file, Diagnostics: res.Bag.Items()}
	}
	return res.Tree, nil
}

// parseRoot - основной цикл верхнего уровня: записи, заголовки таблиц и
// trivia между ними становятся детьми Root.
func (p *Parser) parseRoot() {
	var children []syntax.NodeID
	needNewline := false
	for {
		before := p.rep.errors
		tok := p.advance(lexer.ModeKey, &children)
		if tok.Kind == token.EOF {
			break
		}
		if needNewline && !tok.HasNewline() {
			p.errAt(diag.SynExpectNewline, tok.Span, "expected a newline after the previous entry or header")
		}

		switch {
		case tok.Kind == token.BracketStart:
			children = append(children, p.parseHeader(tok))
		case tok.IsKeySegment():
			children = append(children, p.parseEntry(tok))
		default:
			if tok.Kind != token.Invalid {
				p.errAt(diag.SynUnexpectedToken, tok.Span, "unexpected "+describe(tok)+", expected a key or a table header")
			}
			children = append(children, p.tokenNode(tok))
		}
		if p.rep.errors != before {
			children = p.resyncTop(children)
		}
		needNewline = true
	}
	p.tree.SetChildren(p.tree.Root(), children...)
}

// resyncTop - восстановление после ошибки: прокручиваем до начала
// следующей строки или EOF. Пропущенные токены сохраняются в дереве.
func (p *Parser) resyncTop(children []syntax.NodeID) []syntax.NodeID {
	for {
		tok := p.lx.Peek(lexer.ModeValue)
		if tok.Kind == token.EOF || tok.HasNewline() {
			return children
		}
		tok = p.advance(lexer.ModeValue, &children)
		children = append(children, p.tokenNode(tok))
	}
}
