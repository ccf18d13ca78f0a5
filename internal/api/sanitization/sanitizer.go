package sanitization

import (
	"html/template"
	"strings"
	"unicode/utf8"
)

var lineBreaks = strings.NewReplacer("\r\n", "<br/>", "\n", "<br/>", "\r", "<br/>")

// EscapeHTML escapes a value for placement inside HTML text
func EscapeHTML(input string) string {
	return template.HTMLEscapeString(input)
}

// MultilineHTML escapes input and turns its line breaks into <br/> tags
func MultilineHTML(input string) string {
	return lineBreaks.Replace(template.HTMLEscapeString(input))
}

// Truncate returns at most limit characters of input
func Truncate(input string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(input) <= limit {
		return input
	}
	runes := []rune(input)
	return string(runes[:limit])
}
