package render

// RepRow pairs an object with its cluster's representative (the first object, in rows
// order, assigned to that cluster).
type RepRow struct {
	Name           string
	Representative string
}

// FillRepresentatives collapses rows (already grouped by cluster, as BuildRows and
// BuildRowsWithObjects produce) into object/representative pairs: the representative
// of a cluster is the first row encountered for it, ported from Graph::fillRepresentatives.
func FillRepresentatives(rows []Row) []RepRow {
	if len(rows) == 0 {
		return nil
	}

	out := make([]RepRow, len(rows))
	representative := rows[0].Name
	cluster := rows[0].Cluster

	for i, r := range rows {
		if r.Cluster != cluster {
			cluster = r.Cluster
			representative = r.Name
		}

		out[i] = RepRow{Name: r.Name, Representative: representative}
	}

	return out
}
