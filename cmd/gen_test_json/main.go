package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"geo/internal/geo"
)

// TestCase 一个局面和它的全部伪合法走法，给其他实现做走法生成对拍
type TestCase struct {
	GFEN  string   `json:"gfen"`
	Moves []string `json:"moves"` // 坐标写法，排好序
	SAN   []string `json:"san"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("max", 300, "ply limit per game")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for i := 0; i < *numGames; i++ {
		g := geo.NewGame()
		for ply := 0; ply < *maxPlies && !g.GameOver(); ply++ {
			moves := g.GenerateMoves(geo.GenOptions{})
			if len(moves) == 0 {
				break
			}
			testCases = append(testCases, caseOf(g, moves))

			// 随机选一步
			m := moves[rng.Intn(len(moves))]
			req := geo.MoveRequest{From: m.From.Name(), To: m.To.Name(), Promotion: m.Promotion}
			if _, ok := g.Move(req); !ok {
				log.Fatalf("generated move %s rejected at %s", m, g.GFEN())
			}
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s (seed %d)\n", len(testCases), *numGames, *out, *seed)
}

func caseOf(g *geo.Game, moves []geo.Move) TestCase {
	tc := TestCase{
		GFEN:  g.GFEN(),
		Moves: make([]string, len(moves)),
		SAN:   g.Moves(geo.GenOptions{}),
	}
	for i, m := range moves {
		tc.Moves[i] = m.String()
	}
	sort.Strings(tc.Moves)
	sort.Strings(tc.SAN)
	return tc
}
