package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vayura/oxygen-calculator/internal/api/models"
	"github.com/vayura/oxygen-calculator/internal/api/response"
	"github.com/vayura/oxygen-calculator/internal/events"
	"github.com/vayura/oxygen-calculator/internal/history"
	"github.com/vayura/oxygen-calculator/internal/oxygen"
)

// Input bounds enforced at the boundary. The engine itself accepts any
// values; payloads violating these never reach it.
const (
	maxAQI         = 500
	maxSoilQuality = 100
)

// CalculateHandler handles the oxygen calculation endpoint.
type CalculateHandler struct {
	history   *history.Service
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewCalculateHandler creates a new CalculateHandler.
func NewCalculateHandler(hist *history.Service, publisher events.Publisher, logger zerolog.Logger) *CalculateHandler {
	return &CalculateHandler{
		history:   hist,
		publisher: publisher,
		logger:    logger,
	}
}

// Calculate handles POST /calculate - compute oxygen demand, deficit, and
// tree requirements for a district.
func (h *CalculateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input oxygen.DistrictEnvironmentalData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if fieldErrors := validateInput(input); len(fieldErrors) > 0 {
		response.BadRequest(w, r, "input out of range", fieldErrors)
		return
	}

	result := oxygen.Calculate(input)

	// History and events are best-effort; the response never waits on a
	// failed store or broker.
	h.history.Record(r.Context(), input, result)

	event := &events.CalculationEvent{
		DistrictName:           result.DistrictName,
		Population:             result.Population,
		OxygenDeficitKgPerYear: result.OxygenDeficitKgPerYear,
		TreesRequired:          result.TreesRequired,
		ConfidenceLevel:        string(result.ConfidenceLevel),
		CalculatedAt:           time.Now().UTC(),
	}
	if err := h.publisher.PublishCalculation(r.Context(), event); err != nil {
		h.logger.Error().
			Err(err).
			Str("district", result.DistrictName).
			Msg("failed to publish calculation event")
	}

	response.JSON(w, r, http.StatusOK, result)
}

// validateInput checks the field bounds of the input record.
func validateInput(input oxygen.DistrictEnvironmentalData) []models.FieldError {
	var fieldErrors []models.FieldError

	if input.DistrictName == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "district_name",
			Message: "required",
		})
	}
	if input.Population <= 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "population",
			Message: "must be a positive integer",
		})
	}
	if input.AQI < 0 || input.AQI > maxAQI {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "aqi",
			Message: "must be between 0 and 500",
		})
	}
	if input.SoilQuality < 0 || input.SoilQuality > maxSoilQuality {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "soil_quality",
			Message: "must be between 0 and 100",
		})
	}
	if input.DisasterFrequency < 0 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "disaster_frequency",
			Message: "must be non-negative",
		})
	}

	return fieldErrors
}
