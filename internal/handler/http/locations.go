package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	filter, err := locationFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	locations, err := h.services.LocationService.ListLocations(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if locations == nil {
		locations = []models.LocationDetails{}
	}

	count := len(locations)
	writeEnvelope(w, r, models.Response{Success: true, Data: locations, Count: &count}, http.StatusOK)
}

func (h *Handler) getLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.services.LocationService.GetLocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Response{Success: true, Data: location}, http.StatusOK)
}

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	location, err := h.services.LocationService.CreateLocation(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Response{
		Success: true,
		Data:    location,
		Message: "Location created successfully",
	}, http.StatusCreated)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	update.ID = chi.URLParam(r, "id")

	if err := h.services.LocationService.UpdateLocation(r.Context(), update); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Response{Success: true, Message: "Location updated successfully"}, http.StatusOK)
}

// deactivateLocation is a soft delete: the row stays with is_active=false.
func (h *Handler) deactivateLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LocationService.DeactivateLocation(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Response{Success: true, Message: "Location deactivated successfully"}, http.StatusOK)
}

func locationFilterFromQuery(r *http.Request) (models.LocationFilter, error) {
	query := r.URL.Query()

	var filter models.LocationFilter
	if raw := query.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return models.LocationFilter{}, fmt.Errorf("%w: active=%q", ErrInvalidQuery, raw)
		}
		filter.Active = &active
	}
	if districtID := query.Get("districtId"); districtID != "" {
		filter.DistrictID = &districtID
	}
	if state := query.Get("state"); state != "" {
		filter.State = &state
	}

	return filter, nil
}
