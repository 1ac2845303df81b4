// Package models defines the data structures returned by document and
// spreadsheet extraction.
package models

import "unicode/utf8"

// Page represents the text extracted from a single document page.
type Page struct {
	// Page is the page number (1-based).
	Page int `json:"page" yaml:"page"`
	// Text is the raw extracted text, possibly empty.
	Text string `json:"text" yaml:"text"`
	// CharCount is the number of characters in Text.
	CharCount int `json:"char_count" yaml:"char_count"`
}

// NewPage builds a Page and computes its character count.
func NewPage(number int, text string) Page {
	return Page{
		Page:      number,
		Text:      text,
		CharCount: utf8.RuneCountInString(text),
	}
}
