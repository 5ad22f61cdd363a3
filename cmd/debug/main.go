package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"geo/internal/geo"
)

func main() {
	gfen := flag.String("gfen", geo.DefaultGFEN, "position to inspect")
	depth := flag.Int("depth", 3, "perft depth")
	divide := flag.Bool("divide", false, "print per-move node counts at the given depth")
	flag.Parse()

	pos, err := geo.DecodePosition(*gfen)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}
	fmt.Println("GFEN:", pos.Encode())
	fmt.Println("Pseudo legal moves:", len(pos.GeneratePseudoMoves()))

	if *divide {
		counts := pos.Divide(*depth)
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var total int64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, counts[k])
			total += counts[k]
		}
		fmt.Println("Total:", total)
		return
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := pos.Perft(d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}
}
