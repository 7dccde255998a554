// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render converts note text into presentation formats: Markdown to
// HTML for the JSON API and HTML to PDF for downloads.
package render

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/render_mock.go -package=mock

// MarkdownRenderer converts Markdown source into an HTML fragment.
//
// Raw HTML embedded in the source is not passed through.
type MarkdownRenderer interface {
	Render(src string) (string, error)
}

// PDFRenderer lays out an HTML fragment as a PDF document.
type PDFRenderer interface {
	Render(ctx context.Context, title, html string) ([]byte, error)
}
