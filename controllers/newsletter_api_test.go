package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/newsletter/subscribe", map[string]string{
		"email": "ana@exemplo.com.br",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeBody(t, w)
	assert.Equal(t, "ana@exemplo.com.br", resp["email"])
	assert.NotEmpty(t, resp["created_at"])
	assert.NotZero(t, resp["id"])
}

func TestSubscribeAllowsDuplicates(t *testing.T) {
	r := newTestRouter(t)

	// Sem unicidade de email no schema: duas inscrições geram duas linhas
	first := doJSON(r, "POST", "/newsletter/subscribe", map[string]string{"email": "ana@exemplo.com.br"}, "")
	second := doJSON(r, "POST", "/newsletter/subscribe", map[string]string{"email": "ana@exemplo.com.br"}, "")
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.NotEqual(t, decodeBody(t, first)["id"], decodeBody(t, second)["id"])
}

func TestSubscribeInvalidEmail(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/newsletter/subscribe", map[string]string{"email": "invalido"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email válido")
}

func TestSubscribeMissingEmail(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/newsletter/subscribe", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "obrigatório")
}
