// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	pageMargin    = 20.0
	listIndent    = 6.0
	paragraphGap  = 2.0
	baseFontSize  = 11.0
	titleFontSize = 18.0
	lineFactor    = 0.5
	textFamily    = "go"
	codeFamily    = "gomono"
	pdfCreator    = "go-note-keeper"
)

// fontFaces maps family and B/I style to TrueType data. Faces are embedded
// on first use, so a document only carries the ones it draws with.
var fontFaces = map[string]map[string][]byte{
	textFamily: {
		"":   goregular.TTF,
		"B":  gobold.TTF,
		"I":  goitalic.TTF,
		"BI": gobolditalic.TTF,
	},
	codeFamily: {
		"":   gomono.TTF,
		"B":  gomonobold.TTF,
		"I":  gomonoitalic.TTF,
		"BI": gomonobolditalic.TTF,
	},
}

var headingSizes = map[atom.Atom]float64{
	atom.H1: 18,
	atom.H2: 16,
	atom.H3: 14,
	atom.H4: 13,
	atom.H5: 12,
	atom.H6: 11,
}

type pdfRenderer struct {
	compress bool
}

// NewPDFRenderer returns a [PDFRenderer] that draws with the Go fonts
// embedded as UTF-8 TrueType, so Latin, Cyrillic and Greek text is kept.
func NewPDFRenderer() PDFRenderer {
	return &pdfRenderer{compress: true}
}

func (p *pdfRenderer) Render(ctx context.Context, title, src string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(p.compress)
	doc.SetTitle(title, true)
	doc.SetCreator(pdfCreator, true)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	l := &layout{
		doc:       doc,
		loaded:    make(map[string]bool),
		lineStart: true,
		gapped:    true,
	}
	l.title(title)

	if err := l.walk(ctx, src); err != nil {
		return nil, err
	}
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return buf.Bytes(), nil
}

type listState struct {
	ordered bool
	n       int
}

// layout streams HTML tokens into an fpdf document, keeping the inline
// style stack and list nesting between tokens.
type layout struct {
	doc    *fpdf.Fpdf
	loaded map[string]bool

	bold, italic, underline, strike, code int
	heading                               float64
	pre                                   bool
	lists                                 []listState

	lineStart   bool
	gapped      bool
	afterBullet bool
}

func (l *layout) title(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}

	l.setFont(textFamily, "B", "", titleFontSize)
	l.doc.MultiCell(0, titleFontSize*lineFactor, title, "", "L", false)
	l.doc.Ln(paragraphGap * 2)
}

func (l *layout) walk(ctx context.Context, src string) error {
	z := html.NewTokenizer(strings.NewReader(src))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrInvalidHTML, z.Err())
		case html.TextToken:
			l.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			l.open(atom.Lookup(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			l.close(atom.Lookup(name))
		}

		if l.doc.Err() {
			return fmt.Errorf("%w: %w", ErrRenderFailed, l.doc.Error())
		}
	}
}

func (l *layout) open(tag atom.Atom) {
	switch tag {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		l.block()
		l.heading = headingSizes[tag]
	case atom.P, atom.Div:
		l.block()
	case atom.Blockquote:
		l.block()
		l.italic++
	case atom.Pre:
		l.block()
		l.pre = true
	case atom.Strong, atom.B:
		l.bold++
	case atom.Em, atom.I:
		l.italic++
	case atom.A, atom.U:
		l.underline++
	case atom.Del, atom.S, atom.Strike:
		l.strike++
	case atom.Code:
		l.code++
	case atom.Ul, atom.Ol:
		l.block()
		l.lists = append(l.lists, listState{ordered: tag == atom.Ol})
		l.indent()
	case atom.Li:
		l.item()
	case atom.Br:
		l.doc.Ln(l.lineHeight())
		l.lineStart = true
	case atom.Hr:
		l.block()
		left, _, right, _ := l.doc.GetMargins()
		width, _ := l.doc.GetPageSize()
		y := l.doc.GetY()
		l.doc.Line(left, y, width-right, y)
		l.doc.Ln(paragraphGap)
	}
}

func (l *layout) close(tag atom.Atom) {
	switch tag {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		l.heading = 0
		l.block()
	case atom.P, atom.Div:
		l.block()
	case atom.Blockquote:
		l.italic = max(l.italic-1, 0)
		l.block()
	case atom.Pre:
		l.pre = false
		l.block()
	case atom.Strong, atom.B:
		l.bold = max(l.bold-1, 0)
	case atom.Em, atom.I:
		l.italic = max(l.italic-1, 0)
	case atom.A, atom.U:
		l.underline = max(l.underline-1, 0)
	case atom.Del, atom.S, atom.Strike:
		l.strike = max(l.strike-1, 0)
	case atom.Code:
		l.code = max(l.code-1, 0)
	case atom.Ul, atom.Ol:
		if len(l.lists) > 0 {
			l.lists = l.lists[:len(l.lists)-1]
		}
		l.indent()
		l.block()
	case atom.Li:
		l.newline()
	}
}

func (l *layout) item() {
	l.newline()
	if len(l.lists) == 0 {
		l.lists = append(l.lists, listState{})
		l.indent()
	}

	top := &l.lists[len(l.lists)-1]
	top.n++

	bullet := "- "
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.n)
	}

	l.write(bullet)
	l.afterBullet = true
}

func (l *layout) text(s string) {
	if l.pre {
		for i, line := range strings.Split(s, "\n") {
			if i > 0 {
				l.doc.Ln(l.lineHeight())
				l.lineStart = true
			}
			if line != "" {
				l.write(line)
			}
		}
		return
	}

	s = collapseSpace(s, l.lineStart)
	if s == "" {
		return
	}

	l.write(s)
	if strings.TrimSpace(s) != "" {
		l.afterBullet = false
	}
}

func (l *layout) write(s string) {
	l.applyFont()
	l.doc.Write(l.lineHeight(), s)
	l.lineStart = false
	l.gapped = false
}

// newline ends the current line if anything has been written on it.
func (l *layout) newline() {
	if l.lineStart {
		return
	}

	l.doc.Ln(l.lineHeight())
	l.lineStart = true
}

// block starts a new block element separated from the previous one by a
// single gap. Blocks directly inside a fresh list item stay on the
// bullet's line.
func (l *layout) block() {
	if l.afterBullet {
		return
	}

	l.newline()
	if !l.gapped {
		l.doc.Ln(paragraphGap)
		l.gapped = true
	}
}

func (l *layout) indent() {
	margin := pageMargin + listIndent*float64(len(l.lists))
	l.doc.SetLeftMargin(margin)
	l.doc.SetX(margin)
}

func (l *layout) applyFont() {
	family := textFamily
	if l.code > 0 || l.pre {
		family = codeFamily
	}

	var face, decoration string
	if l.bold > 0 || l.heading > 0 {
		face += "B"
	}
	if l.italic > 0 {
		face += "I"
	}
	if l.underline > 0 {
		decoration += "U"
	}
	if l.strike > 0 {
		decoration += "S"
	}

	l.setFont(family, face, decoration, l.fontSize())
}

// setFont selects family in the given B/I face, embedding it first if this
// document has not used it yet. decoration carries the U and S flags, which
// fpdf draws itself.
func (l *layout) setFont(family, face, decoration string, size float64) {
	key := family + face
	if !l.loaded[key] {
		l.doc.AddUTF8FontFromBytes(family, face, fontFaces[family][face])
		l.loaded[key] = true
	}

	l.doc.SetFont(family, face+decoration, size)
}

func (l *layout) fontSize() float64 {
	if l.heading > 0 {
		return l.heading
	}
	return baseFontSize
}

func (l *layout) lineHeight() float64 {
	return l.fontSize() * lineFactor
}

// collapseSpace folds runs of whitespace to a single space, the way a
// browser lays out inline text. Leading space is dropped at the start of a
// line.
func collapseSpace(s string, lineStart bool) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if lineStart || s == "" {
			return ""
		}
		return " "
	}

	out := strings.Join(fields, " ")

	first, _ := utf8.DecodeRuneInString(s)
	if !lineStart && unicode.IsSpace(first) {
		out = " " + out
	}

	last, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(last) {
		out += " "
	}

	return out
}
