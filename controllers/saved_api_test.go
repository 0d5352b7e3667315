package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveItinerary(t *testing.T, r http.Handler, token string, itineraryID int) map[string]interface{} {
	t.Helper()
	w := doJSON(r, "POST", "/itineraries/save", map[string]int{"itinerary_id": itineraryID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func TestSaveIdempotent(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@exemplo.com.br")
	id := int(searchItinerary(t, r, token)["id"].(float64))

	first := saveItinerary(t, r, token, id)
	second := saveItinerary(t, r, token, id)
	assert.Equal(t, first["saved_id"], second["saved_id"])

	// Uma linha só, mesmo depois de salvar duas vezes
	w := doJSON(r, "GET", "/itineraries/saved", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestSaveMissingItinerary(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@exemplo.com.br")

	w := doJSON(r, "POST", "/itineraries/save", map[string]int{"itinerary_id": 9999}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/itineraries/save", map[string]int{"itinerary_id": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSavedNestsItinerary(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@exemplo.com.br")
	id := int(searchItinerary(t, r, token)["id"].(float64))
	saveItinerary(t, r, token, id)

	w := doJSON(r, "GET", "/itineraries/saved", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	nested := list[0]["itinerary"].(map[string]interface{})
	assert.Equal(t, float64(id), nested["id"])
	assert.Equal(t, "Salvador", nested["destination"])
	assert.NotEmpty(t, list[0]["saved_at"])
}

func TestListSavedScopedToCaller(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerUser(t, r, "ana@exemplo.com.br")
	tokenB := registerUser(t, r, "bruno@exemplo.com.br")

	id := int(searchItinerary(t, r, tokenA)["id"].(float64))
	saveItinerary(t, r, tokenA, id)

	w := doJSON(r, "GET", "/itineraries/saved", nil, tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestUnsave(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@exemplo.com.br")
	id := int(searchItinerary(t, r, token)["id"].(float64))
	savedID := int(saveItinerary(t, r, token, id)["saved_id"].(float64))

	w := doJSON(r, "DELETE", fmt.Sprintf("/itineraries/saved/%d", savedID), nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, "GET", "/itineraries/saved", nil, token)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestUnsaveOtherUsersBookmark(t *testing.T) {
	r := newTestRouter(t)
	tokenA := registerUser(t, r, "ana@exemplo.com.br")
	tokenB := registerUser(t, r, "bruno@exemplo.com.br")

	id := int(searchItinerary(t, r, tokenA)["id"].(float64))
	savedID := int(saveItinerary(t, r, tokenA, id)["saved_id"].(float64))

	// Existe, mas pertence a outro usuário: 404, nunca 403
	w := doJSON(r, "DELETE", fmt.Sprintf("/itineraries/saved/%d", savedID), nil, tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// O marcador do dono continua lá
	w = doJSON(r, "GET", "/itineraries/saved", nil, tokenA)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestUnsaveSurvivesItineraryDeletion(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "ana@exemplo.com.br")
	id := int(searchItinerary(t, r, token)["id"].(float64))
	savedID := int(saveItinerary(t, r, token, id)["saved_id"].(float64))

	w := doJSON(r, "DELETE", fmt.Sprintf("/itineraries/%d", id), nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Apagar o marcador depois do roteiro sumir não pode dar erro 500
	w = doJSON(r, "DELETE", fmt.Sprintf("/itineraries/saved/%d", savedID), nil, token)
	assert.Contains(t, []int{http.StatusNoContent, http.StatusNotFound}, w.Code)
}
