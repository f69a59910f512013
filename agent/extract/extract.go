// Package extract recovers a structured record from free-form generated
// text. Model output routinely wraps the JSON object in commentary or code
// fences and substitutes typographic quotes and dashes; extraction isolates
// the first balanced top-level object and repairs those artifacts before
// decoding.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoObject = errors.New("no JSON object found in text")

// Object extracts the first top-level JSON object from text and decodes it
// into v. A well-formed object decodes to exactly the same key/value pairs
// as parsing it directly; malformed input returns an error and leaves v in
// whatever partial form json.Unmarshal produced.
func Object(text string, v any) error {
	span, err := FirstObject(text)
	if err != nil {
		return err
	}

	repaired := repairArtifacts(span)
	decodeErr := json.Unmarshal([]byte(repaired), v)
	if decodeErr == nil {
		return nil
	}

	// Single-quoted keys/values show up when models emit Python-style dicts.
	if err := json.Unmarshal([]byte(requoteSingle(repaired)), v); err == nil {
		return nil
	}

	return fmt.Errorf("decode extracted object: %w", decodeErr)
}

// FirstObject returns the first balanced {...} span in text, skipping
// anything before the opening brace (prose, code-fence markers). String
// literals and escapes inside the object are honored while balancing.
func FirstObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoObject
	}

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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", ErrNoObject
}

// repairArtifacts undoes the common typographic substitutions that break
// strict JSON parsing: smart quotes (including their stray Windows-1252
// forms) and unicode dashes.
func repairArtifacts(s string) string {
	return artifactReplacer.Replace(s)
}

var artifactReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation
	"”", `"`, // right double quotation
	"„", `"`,
	"", `"`, // stray windows-1252 smart quotes
	"", `"`,
	"‘", "'",
	"’", "'",
	"–", "-", // en dash
	"—", "-", // em dash
	" ", " ",
)

// requoteSingle rewrites single-quoted string literals as double-quoted
// ones, escaping any double quotes they contain. Existing double-quoted
// literals pass through untouched.
func requoteSingle(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inDouble := false
	inSingle := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inDouble:
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inDouble = false
			}
		case inSingle:
			switch {
			case escaped:
				escaped = false
				b.WriteByte(c)
			case c == '\\':
				escaped = true
				b.WriteByte(c)
			case c == '\'':
				inSingle = false
				b.WriteByte('"')
			case c == '"':
				b.WriteString(`\"`)
			default:
				b.WriteByte(c)
			}
		case c == '"':
			inDouble = true
			b.WriteByte(c)
		case c == '\'':
			inSingle = true
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
