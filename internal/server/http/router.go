package httpserver

import (
	"net/http"

	"geo/internal/server/game"
)

// NewRouter 挂上 /api/ 和静态页面；webDir 为空时只提供 API
func NewRouter(m *game.Manager, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(m))
	if webDir != "" {
		RegisterStaticRoutes(mux, webDir)
	}
	return mux
}
