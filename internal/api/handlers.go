package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/flux-imaging/prospect-cli/internal/model"
	"github.com/flux-imaging/prospect-cli/internal/store"
)

type scanRequest struct {
	URL      string `json:"url"`
	MaxPages int    `json:"max_pages"`
}

type playbookRequest struct {
	FacilityName string `json:"facility_name"`
	Location     string `json:"location"`
	URL          string `json:"url"`
	MaxPages     int    `json:"max_pages"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScan runs a scan synchronously and persists the result. The scan
// itself never fails; only persistence errors surface as 500s.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		s.respondWithError(w, http.StatusBadRequest, "url is required")
		return
	}

	intel := s.scanner.ScanWebsite(r.Context(), req.URL, req.MaxPages)

	scan, err := s.store.SaveScan(r.Context(), intel)
	if err != nil {
		zap.L().Error("api: save scan failed", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not persist scan")
		return
	}

	s.respondWithJSON(w, http.StatusOK, scan)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	scans, err := s.store.ListScans(r.Context(), 0)
	if err != nil {
		zap.L().Error("api: list scans failed", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not list scans")
		return
	}
	if scans == nil {
		scans = []model.Scan{}
	}
	s.respondWithJSON(w, http.StatusOK, scans)
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	scan, err := s.store.GetScan(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.respondWithError(w, http.StatusNotFound, "scan not found")
		return
	}
	if err != nil {
		zap.L().Error("api: get scan failed", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not load scan")
		return
	}
	s.respondWithJSON(w, http.StatusOK, scan)
}

// handleGeneratePlaybook scans the facility's website (when given) and
// generates a playbook from the result.
func (s *Server) handleGeneratePlaybook(w http.ResponseWriter, r *http.Request) {
	if s.builder == nil {
		s.respondWithError(w, http.StatusServiceUnavailable, "playbook generation is not configured")
		return
	}

	var req playbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FacilityName == "" {
		s.respondWithError(w, http.StatusBadRequest, "facility_name is required")
		return
	}

	facility := model.Facility{
		Name:     req.FacilityName,
		Location: req.Location,
		Website:  req.URL,
	}

	var intel *model.WebsiteIntelligence
	if req.URL != "" {
		intel = s.scanner.ScanFacility(r.Context(), facility, req.MaxPages)
		if _, err := s.store.SaveScan(r.Context(), intel); err != nil {
			zap.L().Warn("api: save scan failed", zap.Error(err))
		}
	}

	pb, err := s.builder.Generate(r.Context(), facility, intel)
	if err != nil {
		zap.L().Error("api: playbook generation failed", zap.Error(err))
		s.respondWithError(w, http.StatusBadGateway, "playbook generation failed")
		return
	}

	if err := s.store.SavePlaybook(r.Context(), pb); err != nil {
		zap.L().Error("api: save playbook failed", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not persist playbook")
		return
	}

	s.respondWithJSON(w, http.StatusOK, pb)
}

func (s *Server) handleGetPlaybook(w http.ResponseWriter, r *http.Request) {
	pb, err := s.store.GetPlaybook(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		s.respondWithError(w, http.StatusNotFound, "playbook not found")
		return
	}
	if err != nil {
		zap.L().Error("api: get playbook failed", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not load playbook")
		return
	}
	s.respondWithJSON(w, http.StatusOK, pb)
}

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
