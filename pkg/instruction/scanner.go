package instruction

import "strings"

// block is one JSON candidate found inside a chat message, in message order.
// outer is the full message segment the block occupies, fences included, so
// display cleanup removes exactly what was consumed.
type block struct {
	raw    string
	outer  string
	offset int
	fenced bool
}

// scanBlocks extracts candidate JSON payloads from free-form text. Fenced code
// blocks are preferred; outside fences any balanced object or array run is
// collected. Candidates are returned in order of appearance so instruction
// application preserves message order.
func scanBlocks(message string) []block {
	var blocks []block

	rest := message
	base := 0
	for {
		start := strings.Index(rest, "```")
		if start < 0 {
			break
		}
		// Skip the info string (e.g. ```json) up to the first newline.
		body := rest[start+3:]
		if nl := strings.IndexByte(body, '\n'); nl >= 0 {
			body = body[nl+1:]
		} else {
			body = ""
		}
		end := strings.Index(body, "```")
		if end < 0 {
			break
		}

		before := rest[:start]
		blocks = append(blocks, scanBare(before, base)...)

		consumed := len(rest) - len(body[end+3:])
		payload := strings.TrimSpace(body[:end])
		if payload != "" {
			blocks = append(blocks, block{
				raw:    payload,
				outer:  rest[start:consumed],
				offset: base + len(rest) - len(body),
				fenced: true,
			})
		}

		base += consumed
		rest = body[end+3:]
	}

	blocks = append(blocks, scanBare(rest, base)...)
	return blocks
}

// scanBare collects balanced {...} and [...] runs from prose, honouring JSON
// string literals and escapes so braces inside values do not truncate a block.
func scanBare(text string, base int) []block {
	var blocks []block
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '{' && c != '[' {
			continue
		}
		end, ok := matchBalanced(text, i)
		if !ok {
			continue
		}
		blocks = append(blocks, block{
			raw:    text[i : end+1],
			outer:  text[i : end+1],
			offset: base + i,
		})
		i = end
	}
	return blocks
}

// matchBalanced returns the index of the delimiter closing the object or array
// opening at start, or false when the text runs out first.
func matchBalanced(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
