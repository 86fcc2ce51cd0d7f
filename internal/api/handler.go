package api

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"GrowthCalc/internal/calculator"
	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/model"
	"GrowthCalc/internal/plan"
	"GrowthCalc/internal/recorder"
	"GrowthCalc/internal/report"
	"GrowthCalc/internal/service"
)

const maxHistoryLimit = 100

// ProjectionRequest carries the calculator form values.
type ProjectionRequest struct {
	InitialInvestment float64 `json:"initialInvestment"`
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	ReturnRate        float64 `json:"returnRate"` // percent
	Years             int     `json:"years"`
}

// ProjectionResponse is the projection plus derived display data.
type ProjectionResponse struct {
	Result           model.ProjectionResult `json:"result"`
	GrowthMultiplier *float64               `json:"growthMultiplier,omitempty"`
	Series           report.ChartSeries     `json:"series"`
}

// Handler serves the projection HTTP API.
type Handler struct {
	service *service.ProjectionService
	plans   *plan.Store
	history recorder.Recorder
	unit    currency.Unit
}

func NewHandler(svc *service.ProjectionService, plans *plan.Store, history recorder.Recorder, unit currency.Unit) *Handler {
	return &Handler{service: svc, plans: plans, history: history, unit: unit}
}

// Routes registers every endpoint behind the rate limiter.
func (h *Handler) Routes(limiter *RateLimiter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/projection", h.Project)
	mux.HandleFunc("/projection/report", h.Report)
	mux.HandleFunc("/projection/history", h.History)
	mux.HandleFunc("/plan", h.Plan)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return LoggingMiddleware(RateLimitMiddleware(limiter, mux))
}

func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	form := model.Plan{
		InitialInvestment: req.InitialInvestment,
		MonthlyInvestment: req.MonthlyInvestment,
		ReturnRate:        req.ReturnRate,
		Years:             req.Years,
	}
	if err := h.plans.Check(form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in, err := plan.Input(form)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Project(r.Context(), in, recorder.SourceAPI)
	if !h.checkResult(w, result, err) {
		return
	}

	resp := ProjectionResponse{
		Result: result,
		Series: report.Series(result, requestTag(r)),
	}
	if m, ok := calculator.GrowthMultiplier(result); ok {
		resp.GrowthMultiplier = &m
	}
	writeJSON(w, http.StatusOK, resp)
}

// Report renders the saved plan's projection as a text table.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p := h.plans.Get()
	in, err := plan.Input(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.service.Project(r.Context(), in, recorder.SourceAPI)
	if !h.checkResult(w, result, err) {
		return
	}

	tag := plan.Tag(p)
	if hasLangHint(r) {
		tag = requestTag(r)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Language", tag.String())
	w.Write([]byte(report.Table(result, tag, h.unit)))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(n, maxHistoryLimit)
	}
	recs, err := h.history.RecentProjections(limit)
	if err != nil {
		log.Printf("[ERROR] load history: %v", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []recorder.ProjectionRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.plans.Get())
	case http.MethodPut:
		var p model.Plan
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		saved, err := h.plans.Replace(p)
		if err != nil {
			var inputErr *calculator.InvalidInputError
			if errors.As(err, &inputErr) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("[ERROR] replace plan: %v", err)
			http.Error(w, "could not save plan", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// checkResult writes an error response and returns false when the
// projection cannot be served.
func (h *Handler) checkResult(w http.ResponseWriter, result model.ProjectionResult, err error) bool {
	if err != nil {
		var inputErr *calculator.InvalidInputError
		if errors.As(err, &inputErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return false
		}
		log.Printf("[ERROR] projection: %v", err)
		http.Error(w, "projection failed", http.StatusInternalServerError)
		return false
	}
	if math.IsInf(result.TotalValue, 0) || math.IsNaN(result.TotalValue) {
		http.Error(w, "projection exceeds representable range", http.StatusUnprocessableEntity)
		return false
	}
	return true
}

func hasLangHint(r *http.Request) bool {
	return r.URL.Query().Get("lang") != ""
}

func requestTag(r *http.Request) language.Tag {
	if v := strings.TrimSpace(r.URL.Query().Get("lang")); v != "" {
		return i18n.Match(v)
	}
	return i18n.Match(r.Header.Get("Accept-Language"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
