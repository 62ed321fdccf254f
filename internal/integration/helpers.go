//go:build integration

// Package integration exercises the rate board end to end: a real remote
// endpoint, a site directory on disk and the HTTP routes in front of them.
package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rateboard/internal/api"
	"rateboard/internal/api/middleware"
	"rateboard/internal/config"
	"rateboard/internal/service"
)

const sitePage = `<!DOCTYPE html>
<html><body>
<button class="menu-toggle" aria-expanded="false">Menu</button>
<nav id="navMenu" class="nav"></nav>
<p id="rateDate">Rate board date: --</p>
<table>
<tr><td id="rate-giridih-chota">--</td><td id="rate-giridih-mota">--</td><td id="rate-giridih-chicks">--</td></tr>
<tr><td id="rate-deoghar-chota">--</td><td id="rate-deoghar-mota">--</td><td id="rate-deoghar-chicks">--</td></tr>
<tr><td id="rate-barhi-chota">--</td><td id="rate-barhi-mota">--</td><td id="rate-barhi-chicks">--</td></tr>
<tr><td id="rate-chatra-chota">--</td><td id="rate-chatra-mota">--</td><td id="rate-chatra-chicks">--</td></tr>
<tr><td id="rate-jamua-chota">--</td><td id="rate-jamua-mota">--</td><td id="rate-jamua-chicks">--</td></tr>
</table>
<div id="productsCards" class="cards"></div>
<a id="productsToggle" aria-expanded="false">View More</a>
</body></html>`

const remoteBoard = `{"data":{"rate_board_date":"2024-03-05","offices":{
"giridih":{"chota_per_kg":120,"mota_per_kg":"105","chicks_per_piece":35},
"deoghar":{},"barhi":{},"chatra":{},"jamua":{}}}}`

const localBoard = `{"rate_board_date":"2024-02-01","offices":{
"giridih":{"chota_per_kg":99},
"deoghar":{},"barhi":{},"chatra":{},"jamua":{"chicks_per_piece":"28"}}}`

// writeSite creates a site directory holding the page and, when localRates
// is non-empty, a rates.json.
func writeSite(t *testing.T, localRates string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(sitePage), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}
	if localRates != "" {
		if err := os.WriteFile(filepath.Join(dir, "rates.json"), []byte(localRates), 0o600); err != nil {
			t.Fatalf("write rates: %v", err)
		}
	}
	return dir
}

// newSiteServer wires the board service and routes the way the binary does.
func newSiteServer(t *testing.T, dir, apiURL string, timeout time.Duration) *httptest.Server {
	t.Helper()

	site := os.DirFS(dir)
	ratesCfg := config.RatesConfig{
		APIURL:    apiURL,
		TimeoutMs: int(timeout / time.Millisecond),
		LocalFile: "rates.json",
	}
	loc := time.FixedZone("IST", 5*3600+1800)
	board := service.NewBoardService(service.NewRatesChain(ratesCfg, site), site, "index.html", loc, zap.NewNop().Sugar())

	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Get("/", api.HandlePage(board))
	r.Get("/api/rates", api.HandleGetRates(board))
	r.Get("/readyz", api.HandleReadyz(board))
	r.Handle("/*", api.StaticHandler(site, ratesCfg.LocalFile))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(testContext(t), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
