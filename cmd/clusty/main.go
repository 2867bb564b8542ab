// Command clusty groups objects from a tabular pairwise distance file into clusters,
// writing an (object, cluster) table. It is the command-line entry point described by
// params.h/console.cpp/main.cpp: parse flags, load the distance table into a sparse
// adjacency, run the selected clustering algorithm, and render the result.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/clusty-go/clusty/format"
	"github.com/clusty-go/clusty/graph"
	"github.com/clusty-go/clusty/internal/telemetry"
	"github.com/clusty-go/clusty/leiden"
)

const version = "1.0.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "clusty:", err)
		os.Exit(1)
	}
}

type columnFilterFlag struct {
	filters map[string]graph.ColumnFilter
}

// set parses "column=bound" and merges bound into the column's filter, so the
// --min/--max values collected by repeatableFlag can name one filtered column each.
func (f *columnFilterFlag) set(isMax bool, s string) error {
	column, value, ok := splitOnce(s, '=')
	if !ok {
		return fmt.Errorf("expected column=value, got %q", s)
	}

	var bound float64
	if _, err := fmt.Sscanf(value, "%g", &bound); err != nil {
		return fmt.Errorf("invalid bound %q for column %q: %w", value, column, err)
	}

	if f.filters == nil {
		f.filters = make(map[string]graph.ColumnFilter)
	}

	cf, seen := f.filters[column]
	if !seen {
		cf = graph.ColumnFilter{Min: -math.MaxFloat64, Max: math.MaxFloat64}
	}
	cf.Enabled = true

	if isMax {
		cf.Max = bound
	} else {
		cf.Min = bound
	}

	f.filters[column] = cf

	return nil
}

func splitOnce(s string, sep byte) (before, after string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}

	return "", "", false
}

type repeatableFlag struct {
	values []string
}

func (r *repeatableFlag) String() string { return fmt.Sprint(r.values) }

func (r *repeatableFlag) Set(s string) error {
	r.values = append(r.values, s)
	return nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("clusty", flag.ContinueOnError)

	algoName := fs.String("algo", "single", "clustering algorithm: single, complete, uclust, set-cover, cd-hit, leiden")
	threshold := fs.Float64("threshold", 0.5, "distance threshold at which clusters split")
	objectsFile := fs.String("objects-file", "", "optional objects file: a header line, then one object name per line (first column)")
	idCol1 := fs.String("id-col1", "", "name of the first endpoint column (default: the table's first column)")
	idCol2 := fs.String("id-col2", "", "name of the second endpoint column (default: the table's second column)")
	numericIDs := fs.Bool("numeric-ids", false, "treat object identifiers as non-negative integers instead of arbitrary names")
	distanceCol := fs.String("distance-col", "", "name of the distance column (default: the table's third column)")
	similarity := fs.Bool("similarity", false, "interpret the distance column as a [0,1] similarity (distance = 1-x)")
	percentSimilarity := fs.Bool("percent-similarity", false, "interpret the distance column as a [0,100] percent similarity")
	outRepresentatives := fs.Bool("out-representatives", false, "write one representative object per cluster instead of the cluster id")
	outCSV := fs.Bool("out-csv", false, "use a comma instead of a tab as the output column separator")
	leidenResolution := fs.Float64("leiden-resolution", 0.7, "leiden/modularity resolution parameter")
	leidenIterations := fs.Int("leiden-iterations", 2, "leiden iteration count (not read by the gonum-based adapter)")
	numThreads := fs.Int("t", 4, "total loader thread budget")
	verbose := fs.Bool("v", false, "verbose logging")
	showVersion := fs.Bool("version", false, "print the version and exit")

	var minFlags, maxFlags repeatableFlag
	fs.Var(&minFlags, "min", "column=value inclusive lower bound filter, may be repeated")
	fs.Var(&maxFlags, "max", "column=value inclusive upper bound filter, may be repeated")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println("clusty", version)
		return nil
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("expected DISTANCES_FILE and OUTPUT_FILE")
	}

	telemetry.SetVerbose(*verbose)

	algo, ok := format.ParseAlgorithm(*algoName)
	if !ok {
		return fmt.Errorf("unknown clustering algorithm %q", *algoName)
	}

	var cf columnFilterFlag

	for _, v := range minFlags.values {
		if err := cf.set(false, v); err != nil {
			return err
		}
	}

	for _, v := range maxFlags.values {
		if err := cf.set(true, v); err != nil {
			return err
		}
	}

	transform := format.TransformDistance
	switch {
	case *similarity:
		transform = format.TransformSimilarity
	case *percentSimilarity:
		transform = format.TransformPercentSimilarity
	}

	opts := []graph.Option{
		graph.WithNumThreads(*numThreads),
		graph.WithIDColumns(*idCol1, *idCol2),
		graph.WithDistanceColumn(*distanceCol),
		graph.WithTransform(transform),
	}

	if *numericIDs {
		opts = append(opts, graph.WithNumbered())
	}

	for column, filter := range cf.filters {
		opts = append(opts, graph.WithColumnFilter(column, filter.Min, filter.Max))
	}

	cfg, err := graph.New(opts...)
	if err != nil {
		return fmt.Errorf("building loader config: %w", err)
	}

	distancesPath := fs.Arg(0)
	outputPath := fs.Arg(1)

	return cluster(distancesPath, outputPath, *objectsFile, algo, *threshold, cfg, leiden.Params{
		Resolution:    *leidenResolution,
		NumIterations: *leidenIterations,
	}, *outRepresentatives, *outCSV)
}
