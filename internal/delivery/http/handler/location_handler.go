package handler

import (
	"net/http"
	"strings"

	"hongmove-frontdesk/internal/usecase"
	"hongmove-frontdesk/pkg/response"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
	}
}

// ListLocations handles GET /api/locations?q=&category=
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	locations, err := h.locationUsecase.ListLocations(q.Get("q"), q.Get("category"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidCategory:
			response.BadRequest(w, "Invalid location category")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", locations)
}

func (h *LocationHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", h.locationUsecase.GetCategories())
}

// LookupLocation handles GET /api/locations/lookup?name= with an exact name match.
func (h *LocationHandler) LookupLocation(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		response.BadRequest(w, "Missing required query parameter: name")
		return
	}

	location, err := h.locationUsecase.FindByName(name)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", location)
}
