package render

import "sort"

// Row is one output line: an object's name and its (already size-renumbered) cluster.
type Row struct {
	Name    string
	Cluster int
}

// BuildRows renumbers assignments by descending cluster size and returns one Row per
// local object, sorted by (cluster, name) ascending, matching the order
// GraphNamed::saveAssignments produces when no external objects file is given. names
// must be indexed by local id, same length as assignments.
func BuildRows(names []string, assignments []int) []Row {
	old2new, _ := SortClustersBySize(assignments)

	rows := make([]Row, len(assignments))
	for i, a := range assignments {
		rows[i] = Row{Name: names[i], Cluster: old2new[a]}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cluster != rows[j].Cluster {
			return rows[i].Cluster < rows[j].Cluster
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}

// Resolve looks up a name's local id in the loaded distance table; ok is false if the
// name never appeared there. graph.Resolver's Resolve takes raw bytes and returns an
// int32, so it does not have this type; callers build one from the loaded name list
// (cmd/clusty uses a map from name to local id).
type Resolve func(name string) (localID int, ok bool)

// BuildRowsWithObjects reconciles assignments against an external, ordered list of
// object names (objects): names present in the distance table take their renumbered
// cluster; names absent from it ("not in matrix") each become their own new singleton
// cluster appended after every real cluster, in the order they appear in
// objects. This mirrors GraphNamed::saveAssignments's globalNames branch.
func BuildRowsWithObjects(objects []string, resolve Resolve, assignments []int) []Row {
	old2new, numClusters := SortClustersBySize(assignments)

	matched := make([]struct {
		row   Row
		order int
	}, 0, len(objects))

	var unmatched []Row

	singletonID := numClusters

	for order, name := range objects {
		localID, ok := resolve(name)
		if !ok {
			unmatched = append(unmatched, Row{Name: name, Cluster: singletonID})
			singletonID++

			continue
		}

		matched = append(matched, struct {
			row   Row
			order int
		}{row: Row{Name: name, Cluster: old2new[assignments[localID]]}, order: order})
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].row.Cluster != matched[j].row.Cluster {
			return matched[i].row.Cluster < matched[j].row.Cluster
		}
		return matched[i].order < matched[j].order
	})

	rows := make([]Row, 0, len(matched)+len(unmatched))
	for _, m := range matched {
		rows = append(rows, m.row)
	}

	rows = append(rows, unmatched...)

	return rows
}
