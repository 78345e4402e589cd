package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"hongmove-frontdesk/internal/repository"
	"hongmove-frontdesk/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLocationRouter() *mux.Router {
	h := NewLocationHandler(usecase.NewLocationUsecase(repository.NewLocationRepository()))

	router := mux.NewRouter()
	router.HandleFunc("/api/locations", h.ListLocations).Methods(http.MethodGet)
	router.HandleFunc("/api/locations/categories", h.GetCategories).Methods(http.MethodGet)
	router.HandleFunc("/api/locations/lookup", h.LookupLocation).Methods(http.MethodGet)
	return router
}

func TestListLocations(t *testing.T) {
	router := setupLocationRouter()

	w := performRequest(router, http.MethodGet, "/api/locations?q=pier&category=port", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Locations []struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
			Category    string `json:"category"`
		} `json:"locations"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, len(data.Locations), data.Total)
	require.NotEmpty(t, data.Locations)
	for _, loc := range data.Locations {
		assert.Equal(t, "port", loc.Category)
	}
}

func TestListLocations_InvalidCategory(t *testing.T) {
	w := performRequest(setupLocationRouter(), http.MethodGet, "/api/locations?category=beach", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid location category", decode(t, w).Error)
}

func TestGetCategories(t *testing.T) {
	w := performRequest(setupLocationRouter(), http.MethodGet, "/api/locations/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []map[string]string
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &categories))
	require.Len(t, categories, 7)
	assert.Equal(t, map[string]string{"category": "airport", "th": "สนามบิน", "en": "Airports"}, categories[0])
}

func TestLookupLocation(t *testing.T) {
	router := setupLocationRouter()

	w := performRequest(router, http.MethodGet, "/api/locations/lookup?name=Siam+Paragon", "")
	require.Equal(t, http.StatusOK, w.Code)
	var loc map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &loc))
	assert.Equal(t, "loc_020", loc["id"])

	w = performRequest(router, http.MethodGet, "/api/locations/lookup?name=Nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodGet, "/api/locations/lookup", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
