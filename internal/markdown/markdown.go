// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts Markdown source text into HTML using goldmark.
// Used for the about block and for long-form product and service
// descriptions edited in the back-office.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // GitHub-Flavored Markdown: tables, strikethrough, autolinks
		extension.Typographer, // Smart quotes and dashes
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // Auto-generate heading IDs for anchors
	),
)

// ToHTML converts Markdown source into HTML. Raw HTML embedded in the
// source is escaped by goldmark's default renderer, which is what we want
// for admin-entered storefront copy.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
