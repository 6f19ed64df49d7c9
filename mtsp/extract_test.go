// Package mtsp_test — route reconstruction tests, including every
// malformed-edge-set failure mode the extractor must refuse to loop on.
package mtsp_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/taridan/mtsp/mtsp"
)

func TestExtractRoutes_SingleCycle(t *testing.T) {
	t.Parallel()

	edges := []mtsp.Edge{{From: 0, To: 2}, {From: 2, To: 1}, {From: 1, To: 3}, {From: 3, To: 0}}
	routes, err := mtsp.ExtractRoutes(edges, 4, 1)
	if err != nil {
		t.Fatalf("ExtractRoutes() error = %v", err)
	}
	want := []mtsp.Route{{0, 2, 1, 3}}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("routes = %v, want %v", routes, want)
	}
}

func TestExtractRoutes_TwoRoutes(t *testing.T) {
	t.Parallel()

	// Depot fan-out order decides which salesman takes which loop; the
	// FIFO walk hands the earliest-listed depot edge to salesman 0.
	edges := []mtsp.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0},
		{From: 0, To: 3}, {From: 3, To: 4}, {From: 4, To: 0},
	}
	routes, err := mtsp.ExtractRoutes(edges, 5, 2)
	if err != nil {
		t.Fatalf("ExtractRoutes() error = %v", err)
	}
	want := []mtsp.Route{{0, 1, 2}, {0, 3, 4}}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("routes = %v, want %v", routes, want)
	}

	if routes[0].Cities() != 2 || routes[1].Cities() != 2 {
		t.Fatalf("Cities() = %d/%d, want 2/2", routes[0].Cities(), routes[1].Cities())
	}
}

func TestExtractRoutes_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		edges    []mtsp.Edge
		n        int
		salesmen int
	}{
		{"no depot departure", []mtsp.Edge{{From: 1, To: 2}, {From: 2, To: 1}}, 3, 1},
		{"dead end mid-route", []mtsp.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, 3, 1},
		{"repeated node exceeds bound", []mtsp.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}, {From: 1, To: 0},
		}, 3, 1},
		{"leftover edges", []mtsp.Edge{
			{From: 0, To: 1}, {From: 1, To: 0}, {From: 2, To: 3}, {From: 3, To: 2},
		}, 4, 1},
		{"self-loop", []mtsp.Edge{{From: 0, To: 1}, {From: 1, To: 1}, {From: 1, To: 0}}, 2, 1},
		{"endpoint out of range", []mtsp.Edge{{From: 0, To: 7}, {From: 7, To: 0}}, 3, 1},
		{"second salesman has no edges", []mtsp.Edge{
			{From: 0, To: 1}, {From: 1, To: 0},
		}, 2, 2},
		{"no nodes", nil, 0, 1},
		{"no salesmen", nil, 3, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := mtsp.ExtractRoutes(tc.edges, tc.n, tc.salesmen); !errors.Is(err, mtsp.ErrMalformedSolution) {
				t.Fatalf("ExtractRoutes() error = %v, want %v", err, mtsp.ErrMalformedSolution)
			}
		})
	}
}
