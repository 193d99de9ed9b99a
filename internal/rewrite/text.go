package rewrite

import (
	"strings"
)

// commentPrefixes mark whole-line comments across the supported languages.
// The text backend is language-agnostic, so it recognizes the union.
var commentPrefixes = []string{"//", "#", "/*", "*", "--", ";;"}

// RewriteText replaces symbol occurrences outside comments and string
// literals. Matching requires a non-word character (or line start) before
// the occurrence; the character after is deliberately unchecked, so renaming
// price to priceInTicks also extends priceInTicks to priceInTicksInTicks.
// Callers that need both boundaries should use the AST backend.
func RewriteText(content []byte, oldSym, newSym string) ([]byte, int) {
	if oldSym == "" || oldSym == newSym {
		return content, 0
	}

	lines := splitKeepEnds(string(content))
	total := 0
	var b strings.Builder
	b.Grow(len(content))

	for _, line := range lines {
		if isCommentLine(line) {
			b.WriteString(line)
			continue
		}
		rewritten, n := rewriteLine(line, oldSym, newSym)
		total += n
		b.WriteString(rewritten)
	}

	if total == 0 {
		return content, 0
	}
	return []byte(b.String()), total
}

// splitKeepEnds splits on newlines, keeping each terminator with its line so
// the output reassembles byte-for-byte.
func splitKeepEnds(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// rewriteLine scans one line, tracking single and double quoted string
// state with backslash escapes. Replacements only happen outside strings,
// and a line comment start outside a string ends replacement for the rest
// of the line.
func rewriteLine(line, oldSym, newSym string) (string, int) {
	var b strings.Builder
	b.Grow(len(line))

	var inString byte
	count := 0
	i := 0
	for i < len(line) {
		c := line[i]

		if inString != 0 {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(line) {
				b.WriteByte(line[i+1])
				i += 2
				continue
			}
			if c == inString {
				inString = 0
			}
			i++
			continue
		}

		if c == '\'' || c == '"' {
			inString = c
			b.WriteByte(c)
			i++
			continue
		}

		if c == '#' || (c == '/' && i+1 < len(line) && line[i+1] == '/') {
			b.WriteString(line[i:])
			return b.String(), count
		}

		if strings.HasPrefix(line[i:], oldSym) && (i == 0 || !isWordChar(line[i-1])) {
			b.WriteString(newSym)
			i += len(oldSym)
			count++
			continue
		}

		b.WriteByte(c)
		i++
	}

	return b.String(), count
}
