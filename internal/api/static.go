package api

import (
	"io/fs"
	"net/http"
	"strings"
)

// StaticHandler serves the site's static files. The rates file is served
// with no-cache so browsers see the same fallback the server reads.
func StaticHandler(site fs.FS, ratesFile string) http.Handler {
	files := http.FileServer(http.FS(site))
	ratesPath := "/" + strings.TrimPrefix(ratesFile, "/")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == ratesPath {
			w.Header().Set("Cache-Control", "no-cache")
		}
		files.ServeHTTP(w, r)
	})
}
