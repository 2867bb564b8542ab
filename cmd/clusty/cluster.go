package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/clusty-go/clusty/codec"
	"github.com/clusty-go/clusty/format"
	"github.com/clusty-go/clusty/graph"
	"github.com/clusty-go/clusty/internal/telemetry"
	"github.com/clusty-go/clusty/leiden"
	"github.com/clusty-go/clusty/linkage"
	"github.com/clusty-go/clusty/render"

	clustering "github.com/clusty-go/clusty/cluster"
)

// cluster loads distancesPath, runs algo at threshold and writes the resulting table
// to outputPath, optionally reconciled against objectsPath.
func cluster(
	distancesPath, outputPath, objectsPath string,
	algo format.Algorithm,
	threshold float64,
	cfg graph.LoaderConfig,
	leidenParams leiden.Params,
	outRepresentatives, outCSV bool,
) error {
	rawIn, err := os.Open(distancesPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", distancesPath, err)
	}
	defer rawIn.Close()

	in, err := codec.OpenReader(rawIn, codec.DetectByExtension(distancesPath))
	if err != nil {
		return fmt.Errorf("opening %s: %w", distancesPath, err)
	}
	defer in.Close()

	br := bufio.NewReaderSize(in, 1<<20)

	headerLine, err := br.ReadString('\n')
	if err != nil && len(headerLine) == 0 {
		return fmt.Errorf("reading header: %w", err)
	}

	h, err := graph.ParseHeader([]byte(headerLine), cfg.IDColumns, cfg.DistanceColumn, cfg.ColumnFilters)
	if err != nil {
		return fmt.Errorf("parsing header: %w", err)
	}

	adj, resolver, stats, err := graph.Load(br, h, cfg)
	if err != nil {
		return fmt.Errorf("loading distances: %w", err)
	}

	telemetry.Info("loaded distances", "objects", adj.NumObjects(), "edges", adj.NumEdges(), "rows", stats.TotalDistances)

	objects := make([]int, adj.NumObjects())
	for i := range objects {
		objects[i] = i
	}

	assignments := make([]int, adj.NumObjects())
	numClusters, err := runAlgorithm(algo, adj, objects, threshold, leidenParams, assignments)
	if err != nil {
		return err
	}

	telemetry.Info("clustering finished", "algorithm", algo.String(), "clusters", numClusters)

	names := make([]string, adj.NumObjects())
	for i := range names {
		names[i] = resolver.Name(int32(i))
	}

	var rows []render.Row

	if objectsPath != "" {
		objectNames, err := readObjectNames(objectsPath)
		if err != nil {
			return err
		}

		index := make(map[string]int, len(names))
		for i, name := range names {
			index[name] = i
		}

		rows = render.BuildRowsWithObjects(objectNames, func(name string) (int, bool) {
			id, ok := index[name]
			return id, ok
		}, assignments)
	} else {
		rows = render.BuildRows(names, assignments)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	separator := format.SeparatorTab
	if outCSV {
		separator = format.SeparatorComma
	}

	if outRepresentatives {
		return render.WriteRepresentatives(out, separator, render.FillRepresentatives(rows))
	}

	return render.WriteRows(out, separator, rows)
}

// runAlgorithm dispatches to the selected clustering implementation. Every
// implementation shares the (src, objects, threshold, assignments) -> numClusters
// contract except leiden, whose gonum-backed adapter also needs resolution/iteration
// parameters and can fail if built with -tags noleiden.
func runAlgorithm(
	algo format.Algorithm,
	adj *graph.Adjacency,
	objects []int,
	threshold float64,
	leidenParams leiden.Params,
	assignments []int,
) (int, error) {
	switch algo {
	case format.AlgoSingleLinkage:
		return linkage.SingleLinkage(adj, threshold, assignments), nil
	case format.AlgoCompleteLinkage:
		return linkage.CompleteLinkage(adj, threshold, assignments), nil
	case format.AlgoUClust:
		return clustering.UClust(adj, objects, threshold, assignments), nil
	case format.AlgoSetCover:
		return clustering.SetCover(adj, objects, threshold, assignments), nil
	case format.AlgoCdHit:
		return clustering.CdHit(adj, objects, threshold, assignments), nil
	case format.AlgoLeiden:
		return leiden.Cluster(adj, objects, leidenParams, assignments)
	default:
		return 0, fmt.Errorf("unhandled algorithm %v", algo)
	}
}

// readObjectNames reads the object list file: a header line followed by one object
// name per row, taken from the first column up to the first tab or comma separator.
func readObjectNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening objects file %s: %w", path, err)
	}
	defer f.Close()

	var names []string

	sc := bufio.NewScanner(f)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading objects file %s: %w", path, err)
		}

		return nil, nil
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		for i := 0; i < len(line); i++ {
			if line[i] == '\t' || line[i] == ',' {
				line = line[:i]
				break
			}
		}

		names = append(names, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading objects file %s: %w", path, err)
	}

	return names, nil
}
