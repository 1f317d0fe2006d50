// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"bytes"
	"io"
	"strings"

	"github.com/creachadair/postscript/scanner"
)

// TokenKind tags a Token's variant (spec.md §3).
type TokenKind int

const (
	TokNumber TokenKind = iota
	TokName
	TokOperator
	TokLiteralString
	TokDSCComment
	TokLineComment
)

// Token is one lexical unit of a PS byte stream. Only the fields relevant
// to Kind are meaningful; Str holds the name or operator text, and for
// DSCComment/LineComment the comment text stripped of leading '%'s.
type Token struct {
	Kind TokenKind
	Num  float64
	Str  string
	Byte []byte

	// Literal is true for a `/foo`-style literal name, false for a bare
	// executable `foo`. Only meaningful when Kind == TokName; in the
	// recognized subset it is informational (spec.md §4.1).
	Literal bool

	Line int // 1-based
}

// Tokenizer adapts github.com/creachadair/postscript/scanner's general PS
// lexer to this package's Token shape (spec.md §4.1). The underlying
// scanner already implements the escape rules, radix/real number
// classification and comment handling §4.1 calls for; this adapter's job
// is purely reshaping and operator/line classification.
//
// The input is read fully upfront so token positions can be translated to
// 1-based line numbers for diagnostics — the original implementation this
// spec was distilled from does the same (it loads the whole file into a
// string before parsing).
type Tokenizer struct {
	sc         *scanner.Scanner
	lineStarts []int // byte offset of the start of each line
}

// NewTokenizer constructs a Tokenizer over r's full contents.
func NewTokenizer(r io.Reader) (*Tokenizer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	t := &Tokenizer{
		sc:         scanner.New(bytes.NewReader(data)),
		lineStarts: []int{0},
	}
	for i, b := range data {
		if b == '\n' {
			t.lineStarts = append(t.lineStarts, i+1)
		}
	}
	return t, nil
}

func (t *Tokenizer) lineAt(pos int) int {
	lo, hi := 0, len(t.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.lineStarts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// Next returns the next token, io.EOF when the input is exhausted, or a
// *Error of kind TokenizeError on an unterminated string/hex/a85 literal
// (spec.md §4.1).
func (t *Tokenizer) Next() (Token, error) {
	err := t.sc.Next()
	line := t.lineAt(t.sc.Pos())
	if err == io.EOF {
		return Token{}, io.EOF
	}
	if err != nil {
		return Token{}, &Error{Kind: TokenizeError, Line: line, Err: err}
	}

	switch t.sc.Type() {
	case scanner.Comment:
		text := t.sc.Text()
		if strings.HasPrefix(text, "%%") {
			return Token{Kind: TokDSCComment, Str: t.sc.String(), Line: line}, nil
		}
		return Token{Kind: TokLineComment, Str: t.sc.String(), Line: line}, nil

	case scanner.Decimal, scanner.Real, scanner.Radix:
		v, cerr := t.sc.Float64()
		if cerr != nil {
			// Malformed numbers degrade to Name tokens (spec.md §4.1).
			return Token{Kind: TokName, Str: t.sc.Text(), Literal: false, Line: line}, nil
		}
		return Token{Kind: TokNumber, Num: v, Line: line}, nil

	case scanner.Name:
		name := t.sc.Text()
		if operatorNames[name] {
			return Token{Kind: TokOperator, Str: name, Line: line}, nil
		}
		return Token{Kind: TokName, Str: name, Literal: false, Line: line}, nil

	case scanner.QuotedName, scanner.ImmediateName:
		return Token{Kind: TokName, Str: t.sc.String(), Literal: true, Line: line}, nil

	case scanner.LitString, scanner.HexString, scanner.A85String:
		return Token{Kind: TokLiteralString, Byte: []byte(t.sc.String()), Line: line}, nil

	case scanner.Left, scanner.Right:
		return Token{Kind: TokName, Str: t.sc.Text(), Literal: false, Line: line}, nil

	default:
		return Token{Kind: TokName, Str: t.sc.Text(), Literal: false, Line: line}, nil
	}
}
