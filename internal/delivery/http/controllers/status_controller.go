package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"groupsignup/internal/delivery/http/helpers"
	"groupsignup/internal/domain"
)

// StatusController serves the polling dashboard data and the health probe.
type StatusController struct {
	logger        *slog.Logger
	svc           domain.RegistrationService
	tracker       domain.LivenessTracker
	refreshRateMS int
}

// NewStatusController creates a StatusController. refreshRateMS is echoed to
// clients so their poll interval matches the liveness window.
func NewStatusController(logger *slog.Logger, svc domain.RegistrationService, tracker domain.LivenessTracker, refreshRateMS int) *StatusController {
	return &StatusController{
		logger:        logger,
		svc:           svc,
		tracker:       tracker,
		refreshRateMS: refreshRateMS,
	}
}

// capacityInfo mirrors the shape the dashboard polls for.
type capacityInfo struct {
	Capacity int `json:"capacity"`
	Total    int `json:"total"`
}

type registrationInfo struct {
	GroupName   string              `json:"group_name"`
	Registrants []domain.Registrant `json:"registrants"`
}

// statusResponse is the GET /data payload.
// swagger:model statusResponse
type statusResponse struct {
	CapacityData     map[string]capacityInfo     `json:"capacity_data"`
	RegistrationData map[string]registrationInfo `json:"registration_data"`
	RefreshRateMS    int                         `json:"refresh_rate_ms"`
}

// GetData handles GET /data. Both maps are built from one snapshot, so
// capacity figures and registrant lists always agree.
func (c *StatusController) GetData(w http.ResponseWriter, r *http.Request) {
	snap := c.svc.Snapshot(r.Context())

	resp := statusResponse{
		CapacityData:     make(map[string]capacityInfo, len(snap)),
		RegistrationData: make(map[string]registrationInfo, len(snap)),
		RefreshRateMS:    c.refreshRateMS,
	}
	for _, g := range snap {
		resp.CapacityData[g.ID] = capacityInfo{Capacity: g.Available, Total: g.Total}
		resp.RegistrationData[g.ID] = registrationInfo{
			GroupName:   g.Name,
			Registrants: g.Registrants,
		}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// Health handles GET /health.
func (c *StatusController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"active_visitors": c.tracker.ActiveCount(time.Now()),
	})
}
