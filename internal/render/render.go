// Package render implements textual placeholder substitution for email
// templates. Substitution is pure: the same (template, data) pair always
// yields the same output.
package render

import (
	"fmt"
	"regexp"
	"strings"
)

const qrPlaceholder = "{{qr}}"

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render replaces every {{key}} whose key is present in data with its value.
// Substitution is a single left-to-right pass over the template: values are
// emitted verbatim, so a value that itself contains placeholder syntax is
// never re-expanded. Keys absent from data are left unexpanded so an operator
// can spot a typo in the template rather than silently mailing a blank.
func Render(template string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		if value, ok := data[match[2:len(match)-2]]; ok {
			return value
		}
		return match
	})
}

// RenderWithQR renders like Render and additionally resolves the reserved
// {{qr}} placeholder into an embeddable image tag for the given participant
// token. When the resolver fails the placeholder is removed entirely: a
// degraded email without an image beats one leaking template syntax.
func RenderWithQR(template string, data map[string]string, token string, resolve func(string) (string, error)) string {
	out := Render(template, data)

	if !strings.Contains(out, qrPlaceholder) {
		return out
	}

	imageURL, err := resolve(token)
	if err != nil {
		return strings.ReplaceAll(out, qrPlaceholder, "")
	}

	tag := fmt.Sprintf(
		`<img src="%s" alt="QR Code" style="max-width: 300px; display: block; margin: 20px auto;" />`,
		imageURL,
	)
	return strings.ReplaceAll(out, qrPlaceholder, tag)
}
