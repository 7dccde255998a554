// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type markdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer returns a [MarkdownRenderer] backed by goldmark with
// GFM strikethrough enabled. goldmark's default HTML renderer drops raw HTML,
// so note bodies cannot inject markup into the page.
func NewMarkdownRenderer() MarkdownRenderer {
	return &markdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough),
		),
	}
}

func (m *markdownRenderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: markdown: %w", ErrRenderFailed, err)
	}

	return buf.String(), nil
}
