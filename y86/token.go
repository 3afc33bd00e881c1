package y86

import (
	"bufio"
	"io"
	"strings"
)

// SourceLine is a non-blank line of source, split into tokens.
type SourceLine struct {
	LineNo int      // 1-based line number in the source.
	Text   string   // Original text, trimmed.
	Tokens []string // Tokens, in source order.
}

// Tokenize splits a line into tokens. Tokens are separated by whitespace,
// and commas separate operands, so "$5,%eax" and "$5, %eax" both yield
// the tokens "$5" and "%eax".
func Tokenize(text string) (tokens []string) {
	for _, word := range strings.Fields(text) {
		for _, part := range strings.Split(word, ",") {
			if len(part) > 0 {
				tokens = append(tokens, part)
			}
		}
	}
	return
}

// ReadLines reads and tokenizes source text, skipping blank lines.
func ReadLines(input io.Reader) (lines []SourceLine, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		text := strings.TrimSpace(scanner.Text())
		tokens := Tokenize(text)
		if len(tokens) == 0 {
			continue
		}
		lines = append(lines, SourceLine{LineNo: lineno, Text: text, Tokens: tokens})
	}

	err = scanner.Err()

	return
}
