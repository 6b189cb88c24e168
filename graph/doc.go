// Package graph defines the regulatory-graph data model — dense-integer
// VariableId, Sign (reused from sdg), Regulation, and the RegulatoryGraph
// builder — plus its high-level query surface.
//
// RegulatoryGraph is a thin, append-only builder: variables are added by
// count, regulations are added one at a time, and every analysis query
// (StronglyConnectedComponents, ShortestCycle, FeedbackVertexSet, ...)
// derives a fresh github.com/boolnet/regnet/sdg.Graph on demand and
// delegates to it. The derived sdg.Graph is never cached or exposed —
// each query discards it when done.
//
// # Errors
//
// AddRegulation returns ErrVariableOutOfRange for an invalid endpoint.
// The query methods return no error for an invalid VariableId: an
// out-of-range pivot or seed yields a nil cycle or an empty set. Absence
// of a result (no cycle, empty FVS) is a normal zero value, never an
// error.
package graph
