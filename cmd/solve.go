package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taridan/mtsp/harness"
	"github.com/taridan/mtsp/instance"
	"github.com/taridan/mtsp/milp/highs"
	"github.com/taridan/mtsp/mtsp"
	"github.com/taridan/mtsp/render"
)

var (
	// CLI flags for instance selection / generation
	instancePath string // YAML instance file; empty means a random instance
	numNodes     int    // Random instance size
	dims         int    // Random instance coordinate dimensions
	seed         int64  // Random instance seed (0 = fixed default)
	coordLo      int    // Random coordinate lower bound (inclusive)
	coordHi      int    // Random coordinate upper bound (exclusive)

	// CLI flags for the solve itself
	salesmen      int           // Number of routes through the depot
	minCities     int           // Minimum cities per route (0 = default)
	maxCities     int           // Maximum cities per route (0 = n)
	timeLimit     time.Duration // Solver wall-clock budget
	solverVerbose bool          // Surface the engine's own output

	// CLI flags for plotting
	plotPath string // PNG/PDF/SVG output; empty disables plotting
	plotView string // 2d|3d|circles|gradient
)

// solveCmd formulates and solves one instance, reporting through the harness.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve an mTSP instance (random or from a YAML file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, cost, err := loadOrGenerate()
		if err != nil {
			return err
		}

		opts := mtsp.DefaultOptions(salesmen, highs.New(),
			mtsp.WithMinCities(minCities),
			mtsp.WithMaxCities(maxCities),
			mtsp.WithTimeLimit(timeLimit),
		)
		if solverVerbose {
			opts.Verbose = true
		}

		res, err := harness.Timed(nil, "highs", mtsp.Solve, cost, opts)
		if err != nil {
			return err
		}

		if plotPath != "" {
			if err = writePlot(nodes, res.Routes); err != nil {
				return err
			}
			logrus.Infof("Plot written to %s", plotPath)
		}

		return nil
	},
}

// loadOrGenerate resolves the instance from a file or generates a random
// one, returning coordinates (nil when the file carries only a cost matrix)
// and the cost matrix.
func loadOrGenerate() ([][]float64, [][]float64, error) {
	if instancePath != "" {
		in, err := instance.Load(instancePath)
		if err != nil {
			return nil, nil, err
		}
		if in.Salesmen > 0 {
			salesmen = in.Salesmen
		}
		if in.MinCities > 0 {
			minCities = in.MinCities
		}
		if in.MaxCities > 0 {
			maxCities = in.MaxCities
		}
		cost, err := in.CostMatrix()
		if err != nil {
			return nil, nil, err
		}

		return in.Coordinates, cost, nil
	}

	nodes, err := instance.GenerateNodes(instance.GenOptions{
		N: numNodes, Dims: dims, Lo: coordLo, Hi: coordHi, Seed: seed,
	})
	if err != nil {
		return nil, nil, err
	}
	cost, err := instance.Distances(nodes)
	if err != nil {
		return nil, nil, err
	}

	return nodes, cost, nil
}

// writePlot renders the requested view of the solved routes.
func writePlot(nodes [][]float64, routes []mtsp.Route) error {
	if len(nodes) == 0 {
		return render.ErrNoNodes
	}

	st := render.DefaultStyle()

	switch plotView {
	case "3d":
		plt, e := render.Routes3D(nodes, routes, "Problem Solution", st)
		if e != nil {
			return e
		}

		return render.Save(plt, st, plotPath)
	case "circles":
		plt, e := render.CoverageCircles(nodes, routes, "Problem Solution", st)
		if e != nil {
			return e
		}

		return render.Save(plt, st, plotPath)
	case "gradient":
		plt, e := render.CoverageGradient(nodes, routes, "Problem Solution", st)
		if e != nil {
			return e
		}

		return render.Save(plt, st, plotPath)
	default:
		plt, e := render.Routes2D(nodes, routes, "Problem Solution", st)
		if e != nil {
			return e
		}

		return render.Save(plt, st, plotPath)
	}
}

func init() {
	solveCmd.Flags().StringVar(&instancePath, "instance", "", "YAML instance file (omit for a random instance)")
	solveCmd.Flags().IntVar(&numNodes, "nodes", 20, "Random instance: number of nodes")
	solveCmd.Flags().IntVar(&dims, "dims", 2, "Random instance: coordinate dimensions")
	solveCmd.Flags().Int64Var(&seed, "seed", 0, "Random instance: RNG seed (0 = fixed default)")
	solveCmd.Flags().IntVar(&coordLo, "lo", -50, "Random instance: coordinate lower bound")
	solveCmd.Flags().IntVar(&coordHi, "hi", 50, "Random instance: coordinate upper bound")

	solveCmd.Flags().IntVar(&salesmen, "salesmen", 1, "Number of salesmen (routes through the depot)")
	solveCmd.Flags().IntVar(&minCities, "min-cities", 0, "Minimum cities per route (0 = default)")
	solveCmd.Flags().IntVar(&maxCities, "max-cities", 0, "Maximum cities per route (0 = all)")
	solveCmd.Flags().DurationVar(&timeLimit, "time-limit", 60*time.Second, "Solver wall-clock budget")
	solveCmd.Flags().BoolVar(&solverVerbose, "solver-output", false, "Surface the MILP engine's log output")

	solveCmd.Flags().StringVar(&plotPath, "plot", "", "Write a route plot to this file (png/pdf/svg)")
	solveCmd.Flags().StringVar(&plotView, "view", "2d", "Plot view: 2d|3d|circles|gradient")

	rootCmd.AddCommand(solveCmd)
}
