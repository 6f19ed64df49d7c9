// Package mtsp - route reconstruction from a selected edge set.
//
// The walk consumes edges from a source-indexed FIFO adjacency map instead
// of rescanning (and mutating) a flat edge list, which makes each step O(1)
// and removes the indefinite-loop risk a truncated or malformed solver
// assignment would otherwise pose. Every route walk is bounded by n steps
// and every failure mode is an explicit error.
package mtsp

// ExtractRoutes reconstructs one ordered route per salesman from the
// selected directed edge set over nodes 0..n-1.
//
// Each route starts at the depot and repeatedly follows the oldest
// still-unconsumed outgoing edge of the current node until it returns to
// the depot. Routes omit the closing depot.
//
// Errors (all ErrMalformedSolution):
//   - an edge endpoint outside [0, n), or a self-loop;
//   - a route node with no remaining outgoing edge;
//   - a route that fails to close within n steps;
//   - edges left unconsumed after all `salesmen` routes closed.
//
// Complexity: O(n + |edges|) time and space.
func ExtractRoutes(edges []Edge, n, salesmen int) ([]Route, error) {
	if n < 1 || salesmen < 1 {
		return nil, ErrMalformedSolution
	}

	// Source-indexed FIFO adjacency.
	var (
		out  = make([][]int, n)
		e    Edge
		left = len(edges)
	)
	for _, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || e.From == e.To {
			return nil, ErrMalformedSolution
		}
		out[e.From] = append(out[e.From], e.To)
	}

	var (
		routes = make([]Route, 0, salesmen)
		route  Route
		s      int
		cur    int
	)
	for s = 0; s < salesmen; s++ {
		route = Route{}
		cur = Depot
		for {
			// A closed route visits at most n distinct nodes; a longer walk
			// can only mean a repeated node.
			if len(route) == n {
				return nil, ErrMalformedSolution
			}
			route = append(route, cur)
			if len(out[cur]) == 0 {
				return nil, ErrMalformedSolution
			}
			cur, out[cur] = out[cur][0], out[cur][1:]
			left--
			if cur == Depot {
				break
			}
		}
		routes = append(routes, route)
	}

	if left != 0 {
		return nil, ErrMalformedSolution
	}

	return routes, nil
}
