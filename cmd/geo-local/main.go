package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"geo/internal/server/game"
	httpserver "geo/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，无图形界面时忽略
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg, empty for API only")
	open := flag.Bool("open", true, "open the board page in the default browser")
	flag.Parse()

	mux := httpserver.NewRouter(game.NewManager(), *webDir)

	if *webDir != "" {
		log.Printf("listening on %s, serving static from %s", *addr, *webDir)
	} else {
		log.Printf("listening on %s (API only)", *addr)
	}

	// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
	if *open && *webDir != "" {
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
