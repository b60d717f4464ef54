package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_ReplacesKnownKeys(t *testing.T) {
	out := Render("Hi {{name}}, welcome to {{eventName}}!", map[string]string{
		"name":      "Ada",
		"eventName": "GopherCon",
	})

	assert.Equal(t, "Hi Ada, welcome to GopherCon!", out)
}

func TestRender_ReplacesEveryOccurrence(t *testing.T) {
	out := Render("{{name}} {{name}} {{name}}", map[string]string{"name": "Ada"})

	assert.Equal(t, "Ada Ada Ada", out)
}

func TestRender_LeavesUnknownKeys(t *testing.T) {
	out := Render("Hi {{missing}}", map[string]string{})

	assert.Equal(t, "Hi {{missing}}", out)
}

func TestRender_EmptyValue(t *testing.T) {
	out := Render("Hi {{name}}!", map[string]string{"name": ""})

	assert.Equal(t, "Hi !", out)
}

func TestRender_ValueContainingPlaceholderSyntaxStaysLiteral(t *testing.T) {
	data := map[string]string{"a": "{{b}}", "b": "x"}

	// a's value must come out verbatim regardless of map iteration order.
	for i := 0; i < 200; i++ {
		assert.Equal(t, "{{b}}", Render("{{a}}", data))
	}
}

func TestRender_Idempotent(t *testing.T) {
	data := map[string]string{"name": "Ada"}

	first := Render("Hi {{name}}", data)
	second := Render("Hi {{name}}", data)

	assert.Equal(t, first, second)
}

func TestRenderWithQR_ResolvesImageTag(t *testing.T) {
	resolve := func(token string) (string, error) {
		return "https://quickchart.io/qr?text=" + token, nil
	}

	out := RenderWithQR("Scan: {{qr}}", nil, "tok-123456789", resolve)

	assert.Contains(t, out, `<img src="https://quickchart.io/qr?text=tok-123456789"`)
	assert.NotContains(t, out, "{{qr}}")
}

func TestRenderWithQR_ResolverFailureRemovesPlaceholder(t *testing.T) {
	resolve := func(string) (string, error) {
		return "", errors.New("resolver down")
	}

	out := RenderWithQR("{{qr}}", nil, "tok-123456789", resolve)

	assert.Equal(t, "", out)
}

func TestRenderWithQR_NoPlaceholderSkipsResolver(t *testing.T) {
	called := false
	resolve := func(string) (string, error) {
		called = true
		return "", nil
	}

	out := RenderWithQR("Hi {{name}}", map[string]string{"name": "Ada"}, "tok-123456789", resolve)

	assert.Equal(t, "Hi Ada", out)
	assert.False(t, called)
}
