// Package render turns a raw per-object cluster assignment into the output table
// clusty writes: clusters renumbered by descending size, objects ordered by
// (cluster, name), optionally with each object's cluster id replaced by its cluster's
// representative object, and
// optionally reconciled against an external object list so that names absent from the
// distance table still appear as trailing singleton clusters. Ported from the
// reference implementation's Graph::sortClustersBySize, Graph::fillRepresentatives
// and GraphNamed::saveAssignments (graph.cpp, graph.h, graph_named.h).
package render
