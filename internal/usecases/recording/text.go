package recording

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// containsMarkup indica se a política estrita removeria algo do texto.
// Entidades escapadas pela política não contam como marcação.
func containsMarkup(s string) bool {
	if !strings.ContainsAny(s, "<>") {
		return false
	}
	return html.UnescapeString(strictPolicy.Sanitize(s)) != s
}

func containsControl(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsPrint(r) && r != '\t' && r != '\n' && r != '\r'
	}) >= 0
}

// validateText rejeita texto livre que não pode ser gravado como está.
// O valor nunca é reescrito: o que foi enviado é o que volta na leitura.
func validateText(v *ValidationError, field, value string) {
	switch {
	case containsMarkup(value):
		v.add(field, msgMarkup)
	case containsControl(value):
		v.add(field, msgControlChars)
	}
}

func validateOptionalText(v *ValidationError, field string, value *string) {
	if value != nil {
		validateText(v, field, *value)
	}
}
