package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sgoggins/graphsat/graph"
	"github.com/sgoggins/graphsat/mhgraph"
	"github.com/sgoggins/graphsat/sat"
)

func main() {
	var (
		solverName string
		asMHGraph  bool
		asGraph    bool
	)
	flag.StringVar(&solverName, "solver", "gophersat", "satcheck strategy: bruteforce, gophersat, gini or minisat")
	flag.BoolVar(&asMHGraph, "mhgraph", false, "treat the input as a list of hyperedges and satcheck the MHGraph")
	flag.BoolVar(&asGraph, "graph", false, "treat the input as a list of edges and print the validated simple graph")
	flag.Parse()
	if len(flag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] (file.cnf|file.edges)\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Args()[0]
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open %q: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()
	check, err := strategy(solverName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	switch {
	case asGraph:
		err = showGraph(f)
	case asMHGraph:
		err = solveMHGraph(f, check)
	default:
		err = solveCNF(f, path, check)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func strategy(name string) (sat.Strategy, error) {
	switch name {
	case "bruteforce":
		return sat.CNFBruteforce, nil
	case "gophersat":
		return sat.CNFGophersat, nil
	case "gini":
		return sat.CNFGini, nil
	case "minisat":
		return sat.CNFMinisat, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

func solveCNF(f *os.File, path string, check sat.Strategy) error {
	c, err := sat.ParseDimacs(f)
	if err != nil {
		return fmt.Errorf("could not parse CNF in %q: %v", path, err)
	}
	fmt.Printf("c satchecking CNF %s\n", path)
	verdict, err := check(c)
	if err != nil {
		return err
	}
	printVerdict(verdict)
	return nil
}

func solveMHGraph(f *os.File, check sat.Strategy) error {
	edges, err := parseVertexLists(f)
	if err != nil {
		return err
	}
	g, err := mhgraph.New(edges)
	if err != nil {
		return err
	}
	fmt.Printf("c satchecking MHGraph %s\n", g)
	verdict, err := sat.MHGraphSat(g, check)
	if err != nil {
		return err
	}
	printVerdict(verdict)
	return nil
}

func showGraph(f *os.File) error {
	edges, err := parseVertexLists(f)
	if err != nil {
		return err
	}
	g, err := graph.New(edges)
	if err != nil {
		return err
	}
	fmt.Println(g)
	return nil
}

// parseVertexLists reads one vertex list per line, integers separated by
// whitespace. Blank lines and lines starting with "c" are skipped.
func parseVertexLists(f *os.File) ([][]int, error) {
	var lists [][]int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		vs := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("vertex %q is not an int", field)
			}
			vs[i] = v
		}
		lists = append(lists, vs)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}

func printVerdict(satisfiable bool) {
	if satisfiable {
		fmt.Println("SATISFIABLE")
	} else {
		fmt.Println("UNSATISFIABLE")
	}
}
