package lexer_test

import (
	"testing"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.New(sev, code, primary, msg))
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	rep := &testReporter{}
	f := source.Virtual("test.toml", input)
	return lexer.New(f, lexer.Options{Reporter: rep}), rep
}

func collect(lx *lexer.Lexer, mode lexer.Mode) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next(mode)
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestKeyMode(t *testing.T) {
	lx, rep := makeTestLexer(`tool.ruff."lint" = [ 'x' ]`)
	got := collect(lx, lexer.ModeKey)
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.BareKey, "tool"},
		{token.Dot, "."},
		{token.BareKey, "ruff"},
		{token.Dot, "."},
		{token.BasicString, `"lint"`},
		{token.Eq, "="},
		{token.BracketStart, "["},
		{token.LiteralString, "'x'"},
		{token.BracketEnd, "]"},
		{token.EOF, ""},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Kind != want[i].kind || got[i].Text != want[i].text {
			t.Fatalf("token %d: got %s %q, want %s %q", i, got[i].Kind, got[i].Text, want[i].kind, want[i].text)
		}
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
}

func TestValueScalars(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.Integer},
		{"-17", token.Integer},
		{"1_000", token.Integer},
		{"0xDEAD_beef", token.Integer},
		{"0o755", token.Integer},
		{"0b1101", token.Integer},
		{"3.1415", token.Float},
		{"-2E-2", token.Float},
		{"6.626e-34", token.Float},
		{"+inf", token.Float},
		{"nan", token.Float},
		{"true", token.Bool},
		{"false", token.Bool},
		{"1979-05-27T07:32:00Z", token.DateTime},
		{"1979-05-27 07:32:00.999999-07:00", token.DateTime},
		{"1979-05-27", token.DateTime},
		{"07:32:00", token.DateTime},
		{`"""multi
line"""`, token.MultiLineBasicString},
		{`'''it's'''`, token.MultiLineLiteralString},
		{`""""quoted"""""`, token.MultiLineBasicString},
		{`"tab\tescape é"`, token.BasicString},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			tok := lx.Next(lexer.ModeValue)
			if tok.Kind != tt.kind || tok.Text != tt.input {
				t.Fatalf("got %s %q, want %s", tok.Kind, tok.Text, tt.kind)
			}
			if len(rep.diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
			}
			if next := lx.Next(lexer.ModeValue); next.Kind != token.EOF {
				t.Fatalf("expected EOF, got %s %q", next.Kind, next.Text)
			}
		})
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"01", diag.LexBadNumber},
		{"1__0", diag.LexBadNumber},
		{"1979-05-27T25", diag.LexBadDateTime},
		{"bogus", diag.LexUnknownChar},
		{`"open`, diag.LexUnterminatedString},
		{`"bad \q"`, diag.LexBadEscape},
		{`"\u12"`, diag.LexBadEscape},
		{"'''never closed", diag.LexUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			lx.Next(lexer.ModeValue)
			if len(rep.diagnostics) == 0 || rep.diagnostics[0].Code != tt.code {
				t.Fatalf("expected %s, got %+v", tt.code.ID(), rep.diagnostics)
			}
		})
	}
}

func TestTriviaAttachedAsLeading(t *testing.T) {
	lx, _ := makeTestLexer("a = 1  # note\n\n\n[b]\n")
	lx.Next(lexer.ModeKey)   // a
	lx.Next(lexer.ModeKey)   // =
	lx.Next(lexer.ModeValue) // 1
	tok := lx.Next(lexer.ModeKey)
	if tok.Kind != token.BracketStart {
		t.Fatalf("expected '[', got %s", tok.Kind)
	}
	if len(tok.Leading) != 3 {
		t.Fatalf("expected space, comment, newline trivia, got %+v", tok.Leading)
	}
	if tok.Leading[1].Kind != token.TriviaComment || tok.Leading[1].Text != "# note" {
		t.Fatalf("unexpected comment trivia %+v", tok.Leading[1])
	}
	if tok.Leading[2].Kind != token.TriviaNewline || tok.Leading[2].Text != "\n\n\n" {
		t.Fatalf("newline run must be coalesced, got %q", tok.Leading[2].Text)
	}
	lx.Next(lexer.ModeKey) // b
	lx.Next(lexer.ModeKey) // ]
	eof := lx.Next(lexer.ModeKey)
	if eof.Kind != token.EOF || len(eof.Leading) != 1 {
		t.Fatalf("trailing newline must be attached to EOF, got %+v", eof)
	}
}

func TestPeekRescansOnModeChange(t *testing.T) {
	lx, rep := makeTestLexer("true")
	if tok := lx.Peek(lexer.ModeValue); tok.Kind != token.Bool {
		t.Fatalf("expected Bool in value mode, got %s", tok.Kind)
	}
	if tok := lx.Next(lexer.ModeKey); tok.Kind != token.BareKey || tok.Text != "true" {
		t.Fatalf("expected BareKey after mode switch, got %s %q", tok.Kind, tok.Text)
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %+v", rep.diagnostics)
	}
}

func TestPeekDefersDiagnostics(t *testing.T) {
	lx, rep := makeTestLexer("01")
	lx.Peek(lexer.ModeValue)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("peek must not report")
	}
	lx.Next(lexer.ModeKey)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("01 is a valid bare key, got %+v", rep.diagnostics)
	}
}
