package main

import (
	"flag"
	"log"

	"geo/internal/tui"
)

func main() {
	gfen := flag.String("gfen", "", "start position (GFEN), empty for the initial position")
	flag.Parse()

	if err := tui.Run(*gfen); err != nil {
		log.Fatal(err)
	}
}
