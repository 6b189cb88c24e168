package sdg

import "testing"

func TestRestrictedSCCNonTrivialityFilter(t *testing.T) {
	// 0 -> 1 -> 0 (a real 2-cycle), 2 isolated (no self-loop), 3 with a self-loop.
	g := New(4)
	g.AddEdge(0, 1, Positive)
	g.AddEdge(1, 0, Positive)
	g.AddEdge(3, 3, Negative)

	sccs := g.RestrictedSCC(g.AllVertices())
	if len(sccs) != 2 {
		t.Fatalf("expected 2 non-trivial components, got %d: %v", len(sccs), sccs)
	}
	// Size-sorted descending: {0,1} before {3}.
	if len(sccs[0]) != 2 || len(sccs[1]) != 1 {
		t.Fatalf("expected sizes [2,1], got %v", sccs)
	}
	if sccs[1][0] != 3 {
		t.Fatalf("the singleton component must be the self-looping vertex 3, got %v", sccs[1])
	}
	for _, comp := range sccs {
		for _, v := range comp {
			if v == 2 {
				t.Fatal("vertex 2 has no cycle and must not appear in any component")
			}
		}
	}
}

func TestRestrictedSCCCompletenessOfDisjointCycles(t *testing.T) {
	// {a<->b} and {c<->d}: two disjoint 2-cycles.
	g := New(4)
	g.AddEdge(0, 1, Positive)
	g.AddEdge(1, 0, Positive)
	g.AddEdge(2, 3, Positive)
	g.AddEdge(3, 2, Positive)

	sccs := g.RestrictedSCC(g.AllVertices())
	if len(sccs) != 2 {
		t.Fatalf("expected 2 components, got %d", len(sccs))
	}
	for _, comp := range sccs {
		if len(comp) != 2 {
			t.Fatalf("expected both components of size 2, got %v", comp)
		}
	}
}

func TestRestrictedSCCRespectsRestriction(t *testing.T) {
	// 0 -> 1 -> 2 -> 0, restricting out vertex 1 should break the cycle.
	g := New(3)
	g.AddEdge(0, 1, Positive)
	g.AddEdge(1, 2, Positive)
	g.AddEdge(2, 0, Positive)

	r := NewVertexSet(0, 2)
	sccs := g.RestrictedSCC(r)
	if len(sccs) != 0 {
		t.Fatalf("expected no cycle once vertex 1 is excluded, got %v", sccs)
	}
}

func TestRestrictedWCCIncludesIsolatedSingletons(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1, Positive)
	// vertex 2 has no edges at all.
	wccs := g.RestrictedWCC(g.AllVertices())
	if len(wccs) != 2 {
		t.Fatalf("expected 2 weak components, got %d: %v", len(wccs), wccs)
	}
}
