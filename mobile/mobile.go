package mobile

import (
	"log"
	"net"
	"net/http"

	"geo/internal/server/game"
	httpserver "geo/internal/server/http"
)

// StartServer starts the local HTTP server for an embedding app.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"; "0" picks a free one
// Returns the address actually bound.
func StartServer(webDir string, port string) (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		return "", err
	}
	mux := httpserver.NewRouter(game.NewManager(), webDir)

	// Run in background so it doesn't block the app UI thread
	go func() {
		if err := http.Serve(ln, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
	return ln.Addr().String(), nil
}
