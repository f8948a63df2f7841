package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// classBlockRe splits a trailing "– Block N" (any dash style) off a
// classification label.
var classBlockRe = regexp.MustCompile(`(?i)^(.*?)(?:\s*[–—-]\s*Block\s*(\d+))?$`)

// SplitClassBlock decomposes classification text into its division label
// and block number. Block 0 means no block. Text with no recognizable
// label yields ("", 0); the orchestrator maps that to the "Unknown"
// classification rather than failing the page.
func SplitClassBlock(text string) (string, int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0
	}

	m := classBlockRe.FindStringSubmatch(text)
	if m == nil {
		return "", 0
	}

	label := strings.TrimSpace(m[1])
	block := 0
	if m[2] != "" {
		block, _ = strconv.Atoi(m[2])
	}
	return label, block
}
