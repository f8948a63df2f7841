package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Header is the best-effort identity a page header yields. Absent fields
// are zero values, never an error; the orchestrator fills the gaps from
// the filename.
type Header struct {
	ShowName           string
	Location           string // "City, ST"
	ShowDate           time.Time
	ClassificationText string // e.g. "Percussion Scholastic A – Block 2"
}

// headerRule binds one pattern to the header field its first capture (or
// whole match) populates. The rules are independent and order-free.
type headerRule struct {
	re     *regexp.Regexp
	assign func(h *Header, m []string)
}

var (
	// showNameRe matches a run ending in "HS" plus a recognized day word.
	showNameRe = regexp.MustCompile(`([A-Za-z ]+ HS(?: Saturday| Sunday| Finals| Prelims))`)

	// locationRe matches "City, ST" after a dash in the header line.
	locationRe = regexp.MustCompile(`[–—-]\s*([A-Za-z ]+,\s*[A-Z]{2})`)

	// dateRe matches a long-form date like "March 8, 2025".
	dateRe = regexp.MustCompile(`([A-Za-z]+) (\d{1,2}),\s*(\d{4})`)

	// classRe matches a division header with an optional block suffix.
	classRe = regexp.MustCompile(`(?i)(Percussion (?:Scholastic|Independent) [A-Za-z ]+)(?:\s*[–—-]\s*Block\s*\d+)?`)
)

var headerRules = []headerRule{
	{showNameRe, func(h *Header, m []string) {
		h.ShowName = strings.TrimSpace(m[1])
	}},
	{locationRe, func(h *Header, m []string) {
		h.Location = strings.TrimSpace(m[1])
	}},
	{dateRe, func(h *Header, m []string) {
		d, err := time.Parse("January 2, 2006", fmt.Sprintf("%s %s, %s", m[1], m[2], m[3]))
		if err == nil {
			h.ShowDate = d
		}
	}},
	{classRe, func(h *Header, m []string) {
		h.ClassificationText = strings.TrimSpace(m[0])
	}},
}

// ScanHeader applies the header rules to a page's extracted text. Empty
// input yields an empty Header.
func ScanHeader(text string) Header {
	var h Header
	for _, rule := range headerRules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			rule.assign(&h, m)
		}
	}
	return h
}
