package sdg

import "testing"

func TestAddEdgeMaintainsMirrorInvariant(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1, Positive)
	g.AddEdge(0, 1, Negative) // parallel edge, differing sign, kept distinct

	succ := g.SuccessorsOf(0, g.AllVertices())
	if len(succ) != 2 {
		t.Fatalf("expected 2 distinct parallel successor edges, got %v", succ)
	}
	pred := g.PredecessorsOf(1, g.AllVertices())
	if len(pred) != 2 {
		t.Fatalf("expected 2 distinct parallel predecessor edges, got %v", pred)
	}
	for _, s := range succ {
		matched := false
		for _, p := range pred {
			if p.Vertex == 0 && p.Sign == s.Sign {
				matched = true
			}
		}
		if !matched {
			t.Fatalf("successor %v has no mirrored predecessor entry", s)
		}
	}
}

func TestSelfLoopsAreNotSuppressed(t *testing.T) {
	g := New(1)
	g.AddEdge(0, 0, Positive)
	if succ := g.SuccessorsOf(0, g.AllVertices()); len(succ) != 1 {
		t.Fatalf("expected self-loop to be kept, got %v", succ)
	}
}

func TestRestrictionFiltersNeighbors(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1, Positive)
	g.AddEdge(0, 2, Positive)

	r := NewVertexSet(0, 1) // vertex 2 excluded
	succ := g.SuccessorsOf(0, r)
	if len(succ) != 1 || succ[0].Vertex != 1 {
		t.Fatalf("expected only neighbor 1 after restriction, got %v", succ)
	}
}
