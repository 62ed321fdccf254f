package api

import (
	"errors"
	"net/http"

	"rateboard/internal/service"
)

// RatesResponse is the resolved rate board
type RatesResponse struct {
	State         string                       `json:"state" example:"APPLIED"`
	Source        string                       `json:"source,omitempty" example:"remote"`
	RateBoardDate string                       `json:"rate_board_date,omitempty" example:"05-03-2024"`
	Offices       map[string]map[string]string `json:"offices"`
}

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status string `json:"status" example:"ready"`
}

// HandlePage godoc
// @Summary Rendered site page
// @Description Renders the landing page with the current rate board. Falls back to the local rates.json and then to the values already in the page; rate failures never fail the request.
// @Tags page
// @Produce html
// @Param menu query string false "Render the navigation menu open" Enums(open)
// @Param products query string false "Render the full product list" Enums(all)
// @Success 200 {string} string "HTML page"
// @Failure 503 {object} ErrorResponse "Page template unavailable"
// @Router / [get]
func HandlePage(svc service.BoardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := service.RenderOptions{
			MenuOpen:         q.Get("menu") == "open",
			ProductsExpanded: q.Get("products") == "all",
		}

		body, _, err := svc.RenderPage(r.Context(), opts)
		if err != nil {
			if errors.Is(err, service.ErrPageUnavailable) {
				writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Page unavailable"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

// HandleGetRates godoc
// @Summary Get the resolved rate board
// @Description Runs the same remote-then-local acquisition as the page and returns the values the board would show. An empty offices object means every source failed and the page keeps its built-in values.
// @Tags rates
// @Produce json
// @Success 200 {object} RatesResponse "Resolved board"
// @Router /api/rates [get]
func HandleGetRates(svc service.BoardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b := svc.Board(r.Context())

		resp := RatesResponse{
			State:         string(b.Outcome.State),
			Source:        b.Outcome.Source,
			RateBoardDate: b.Date,
			Offices:       make(map[string]map[string]string, len(b.Prices)),
		}
		for office, prices := range b.Prices {
			m := make(map[string]string, len(prices))
			for product, v := range prices {
				m[string(product)] = v
			}
			resp.Offices[string(office)] = m
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description Checks that the page template can be read and parsed. Rate sources are not checked, the page renders without them.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Page template ready"
// @Failure 503 {object} ErrorResponse "Page template unavailable"
// @Router /readyz [get]
func HandleReadyz(svc service.BoardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckPage(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Page not ready"})
			return
		}
		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
	}
}
