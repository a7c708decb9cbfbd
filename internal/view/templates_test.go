package view

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderLoginPage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = engine.Render(rec, "pages/login.html", TemplateData{
		Title:     "Sign in",
		CSRFToken: "token-123",
		Data: map[string]any{
			"Errors": map[string]string{},
			"Form":   map[string]string{"Email": ""},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "token-123")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
