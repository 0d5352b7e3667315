package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTicket(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/support", map[string]string{
		"name":    "A",
		"email":   "a@x.com",
		"message": "hi",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	ticket := decodeBody(t, w)
	assert.Equal(t, "aberto", ticket["status"])
	assert.Equal(t, "A", ticket["name"])
	assert.Equal(t, "", ticket["subject"])
	assert.NotEmpty(t, ticket["created_at"])
}

func TestSubmitTicketIgnoresClientStatus(t *testing.T) {
	r := newTestRouter(t)

	// Status vem sempre do servidor
	w := doJSON(r, "POST", "/support", map[string]string{
		"name":    "Ana",
		"email":   "ana@exemplo.com.br",
		"subject": "Dúvida",
		"message": "Como altero meu roteiro?",
		"status":  "fechado",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "aberto", decodeBody(t, w)["status"])
}

func TestSubmitTicketValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/support", map[string]string{"subject": "só assunto"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	for _, field := range []string{"name", "email", "message"} {
		assert.Contains(t, w.Body.String(), field)
	}
}
