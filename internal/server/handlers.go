package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/services/strategist"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{
		Stats:    strategist.GetStats(),
		Products: s.agents.Builder.Products(),
	}
	var buf bytes.Buffer
	if err := s.view.Execute(&buf, data); err != nil {
		s.log.Error("dashboard render", zap.Error(err), zap.String("request_id", requestIDFrom(r.Context())))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStrategist(w http.ResponseWriter, r *http.Request) {
	res, err := s.analyze(r)
	if err != nil {
		s.log.Error("strategist error", zap.Error(err), zap.String("request_id", requestIDFrom(r.Context())))
		writeError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// analyze decodes the body and runs the strategist. A panic in the agent is
// returned as an error so the caller answers with the generic failure, as is
// a body over the size limit.
func (s *Server) analyze(r *http.Request) (res domain.AnalysisResult, err error) {
	defer func() {
		if rv := recover(); rv != nil {
			err = fmt.Errorf("analysis panic: %v", rv)
		}
	}()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return res, fmt.Errorf("read body: %w", err)
	}
	var input any
	if err := json.Unmarshal(body, &input); err != nil {
		return res, fmt.Errorf("decode body: %w", err)
	}
	return s.agents.Strategist.Analyze(input), nil
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, strategist.GetStats())
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.agents.Builder.GetTemplates())
}

type createProductRequest struct {
	Type domain.ProductType `json:"type"`
}

// handleCreateProduct answers 200 even for an unknown type; the miss is
// carried in the body's error field.
func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.agents.Builder.CreateProduct(req.Type))
}

func (s *Server) handleDMs(w http.ResponseWriter, r *http.Request) {
	leadType := domain.LeadType(r.URL.Query().Get("type"))
	writeJSON(w, http.StatusOK, s.agents.Outreach.GenerateDMs(leadType))
}
