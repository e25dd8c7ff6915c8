// Command searchlab demonstrates the classic search problems in this
// repository on fixed reference inputs.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"lukechampine.com/frand"

	"searchlab/cryptarith"
	"searchlab/graph"
	"searchlab/puzzle"
	"searchlab/queens"
	"searchlab/rivercross"
	"searchlab/tsp"
	"searchlab/vacuum"
	"searchlab/waterjug"
)

var demoOrder = []string{
	"puzzle", "bfs", "dfs", "waterjug", "rivercross",
	"queens", "tsp", "vacuum", "cryptarith",
}

func main() {
	demoFlag := flag.String("demo", "all", "demo to run: all, "+strings.Join(demoOrder, ", "))
	shuffleSteps := flag.Int("shuffle", 0, "solve a board shuffled this many random moves instead of the fixed instance")
	verbose := flag.Bool("v", false, "debug logging")
	profileCPU := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	demos := map[string]func(){
		"puzzle":     func() { demoPuzzle(*shuffleSteps) },
		"bfs":        demoBFS,
		"dfs":        demoDFS,
		"waterjug":   demoWaterJug,
		"rivercross": demoRiverCross,
		"queens":     demoQueens,
		"tsp":        demoTSP,
		"vacuum":     demoVacuum,
		"cryptarith": demoCryptarith,
	}

	names := []string{*demoFlag}
	if *demoFlag == "all" {
		names = demoOrder
	}
	for _, name := range names {
		run, ok := demos[name]
		if !ok {
			log.Fatal().Str("demo", name).Msg("unknown demo")
		}
		fmt.Printf("=== %s ===\n", name)
		started := time.Now()
		run()
		log.Debug().Str("demo", name).Dur("took", time.Since(started)).Msg("demo-done")
		fmt.Println()
	}
}

func demoPuzzle(shuffleSteps int) {
	start, err := puzzle.NewState([]int{1, 2, 3, 4, 0, 5, 7, 8, 6})
	if err != nil {
		log.Fatal().Err(err).Msg("bad demo board")
	}
	if shuffleSteps > 0 {
		start, err = puzzle.Shuffle(shuffleSteps)
		if err != nil {
			log.Fatal().Err(err).Msg("shuffle")
		}
	}
	goal := puzzle.Goal()

	fmt.Printf("start: %v\n", start)
	fmt.Printf("goal:  %v\n", goal)

	started := time.Now()
	res, err := puzzle.Solve(start, goal)
	if err != nil {
		log.Fatal().Err(err).Msg("solve")
	}
	log.Info().
		Int("expanded", res.Expanded).
		Int("length", len(res.Moves)).
		Dur("took", time.Since(started)).
		Msg("puzzle-solved")

	if !res.Found {
		fmt.Println("no solution found")
	} else {
		labels := make([]string, len(res.Moves))
		for i, m := range res.Moves {
			labels[i] = m.String()
		}
		fmt.Printf("solution (%d moves): %s\n", len(res.Moves), strings.Join(labels, ", "))
	}

	// flipping two tiles makes the board unreachable
	unsolvable := puzzle.State{2, 1, 3, 4, 5, 6, 7, 8, puzzle.Blank}
	fmt.Printf("unsolvable check: %v -> ", unsolvable)
	res, err = puzzle.Solve(unsolvable, goal)
	if err != nil {
		log.Fatal().Err(err).Msg("solve")
	}
	if !res.Found {
		fmt.Printf("no solution found (%d states expanded)\n", res.Expanded)
	}
}

// lettersGraph is the reference traversal graph, undirected.
func lettersGraph() graph.Graph[string] {
	return graph.Graph[string]{
		"A": {"B", "C"},
		"B": {"A", "D", "E"},
		"C": {"A", "F"},
		"D": {"B"},
		"E": {"B", "F"},
		"F": {"C", "E", "G"},
		"G": {"F"},
	}
}

func printGraph(g graph.Graph[string]) {
	nodes := maps.Keys(g)
	slices.Sort(nodes)
	fmt.Println("adjacency:")
	for _, node := range nodes {
		fmt.Printf("  %s: %v\n", node, g[node])
	}
}

func demoBFS() {
	g := lettersGraph()
	printGraph(g)
	for _, start := range []string{"A", "D"} {
		order, err := g.BFS(start)
		if err != nil {
			log.Fatal().Err(err).Str("start", start).Msg("bfs")
		}
		fmt.Printf("BFS from %s: %v\n", start, order)
	}

	path, found, err := g.ShortestPath("A", "G")
	if err != nil {
		log.Fatal().Err(err).Msg("shortest path")
	}
	if found {
		fmt.Printf("fewest hops A->G: %v\n", path)
	}
}

func demoDFS() {
	g := lettersGraph()
	for _, start := range []string{"A", "D"} {
		recursive, err := g.DFS(start)
		if err != nil {
			log.Fatal().Err(err).Str("start", start).Msg("dfs")
		}
		iterative, err := g.DFSIterative(start)
		if err != nil {
			log.Fatal().Err(err).Str("start", start).Msg("dfs")
		}
		fmt.Printf("DFS from %s (recursive): %v\n", start, recursive)
		fmt.Printf("DFS from %s (iterative): %v\n", start, iterative)
	}
}

func demoWaterJug() {
	for _, c := range []struct{ capA, capB, target int }{
		{4, 3, 2},
		{2, 6, 5},
		{5, 3, 4},
	} {
		fmt.Printf("jugs %dL/%dL, target %dL:\n", c.capA, c.capB, c.target)
		steps, found, err := waterjug.Solve(c.capA, c.capB, c.target)
		if err != nil {
			log.Fatal().Err(err).Msg("water jug")
		}
		if !found {
			fmt.Println("  no solution found")
			continue
		}
		for _, step := range steps {
			fmt.Printf("  %v -> %v\n", step.Action, step.State)
		}
	}
}

func demoRiverCross() {
	const pairs, boatCap = 3, 2
	fmt.Printf("%d missionaries, %d cannibals, boat for %d:\n", pairs, pairs, boatCap)
	steps, found, err := rivercross.Solve(pairs, boatCap)
	if err != nil {
		log.Fatal().Err(err).Msg("river crossing")
	}
	if !found {
		fmt.Println("no solution found")
		return
	}
	for i, step := range steps {
		fmt.Printf("  %2d. %v -> left %dM/%dC\n", i+1, step, step.State.MLeft, step.State.CLeft)
	}
	log.Info().Int("crossings", len(steps)).Msg("rivercross-solved")
}

func demoQueens() {
	const n = 8
	solutions, err := queens.Solve(n)
	if err != nil {
		log.Fatal().Err(err).Msg("queens")
	}
	fmt.Printf("%d solutions for %d queens; the first:\n", len(solutions), n)
	fmt.Println(queens.Render(solutions[0]))
}

func demoTSP() {
	matrix := tsp.Matrix{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
	tour, err := tsp.Solve(matrix)
	if err != nil {
		log.Fatal().Err(err).Msg("tsp matrix")
	}
	names := []string{"A", "B", "C", "D"}
	stops := make([]string, len(tour.Order))
	for i, city := range tour.Order {
		stops[i] = names[city]
	}
	fmt.Printf("matrix tour: %s, cost %.0f\n", strings.Join(stops, " -> "), tour.Cost)

	points := []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 2}, {X: 5, Y: 1}}
	tour, err = tsp.Solve(tsp.FromPoints(points))
	if err != nil {
		log.Fatal().Err(err).Msg("tsp points")
	}
	fmt.Printf("euclidean tour: %v, cost %.2f\n", tour.Order, tour.Cost)
}

func demoVacuum() {
	statuses := [...]vacuum.Status{vacuum.Clean, vacuum.Dirty}
	env := vacuum.NewEnvironment(
		statuses[frand.Intn(2)],
		statuses[frand.Intn(2)],
		vacuum.Room(frand.Intn(2)),
	)
	fmt.Printf("agent starts in room %v\n", env.Agent())

	trace := vacuum.Run(env, vacuum.ReflexAgent{}, 10)
	for _, entry := range trace {
		fmt.Printf("  step %d: room %v is %v -> %v (score %d)\n",
			entry.Step, entry.Percept.Location, entry.Percept.Status, entry.Action, entry.Score)
	}
	fmt.Printf("final score: %d\n", env.Score())
}

func demoCryptarith() {
	for _, p := range []string{"SEND + MORE = MONEY", "TWO + TWO = FOUR"} {
		fmt.Printf("%s:\n", p)
		started := time.Now()
		sol, found, err := cryptarith.Solve(p)
		if err != nil {
			log.Fatal().Err(err).Str("puzzle", p).Msg("cryptarith")
		}
		if !found {
			fmt.Println("  no solution found")
			continue
		}
		log.Debug().Str("puzzle", p).Dur("took", time.Since(started)).Msg("cryptarith-solved")

		letters := maps.Keys(sol.Assignment)
		slices.Sort(letters)
		parts := make([]string, len(letters))
		for i, letter := range letters {
			parts[i] = fmt.Sprintf("%c=%d", letter, sol.Assignment[letter])
		}
		operands := make([]string, len(sol.Operands))
		for i, v := range sol.Operands {
			operands[i] = fmt.Sprint(v)
		}
		fmt.Printf("  { %s }\n", strings.Join(parts, ", "))
		fmt.Printf("  %s = %d\n", strings.Join(operands, " + "), sol.Sum)
	}
}
