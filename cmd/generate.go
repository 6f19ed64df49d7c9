package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taridan/mtsp/instance"
)

var (
	genOut    string // Output YAML path
	genName   string // Instance name
	genGridX  int    // Grid columns; 0 selects random generation instead
	genGridY  int    // Grid rows (0 = square)
	genStartX float64
	genStartY float64
)

// generateCmd emits a random or survey-grid instance as a YAML file.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an mTSP instance file (random nodes or a survey grid)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			nodes [][]float64
			err   error
		)
		if genGridX > 0 {
			nodes, err = instance.GenerateGrid(genGridX, genGridY, [2]float64{genStartX, genStartY})
		} else {
			nodes, err = instance.GenerateNodes(instance.GenOptions{
				N: numNodes, Dims: dims, Lo: coordLo, Hi: coordHi, Seed: seed,
			})
		}
		if err != nil {
			return err
		}

		in := &instance.Instance{
			Name:        genName,
			Coordinates: nodes,
			Salesmen:    salesmen,
			MinCities:   minCities,
			MaxCities:   maxCities,
		}
		if err = instance.Save(genOut, in); err != nil {
			return err
		}
		logrus.Infof("Instance with %d nodes written to %s", len(nodes), genOut)

		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOut, "out", "instance.yaml", "Output YAML path")
	generateCmd.Flags().StringVar(&genName, "name", "random", "Instance name")
	generateCmd.Flags().IntVar(&numNodes, "nodes", 20, "Random: number of nodes")
	generateCmd.Flags().IntVar(&dims, "dims", 2, "Random: coordinate dimensions")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Random: RNG seed (0 = fixed default)")
	generateCmd.Flags().IntVar(&coordLo, "lo", -50, "Random: coordinate lower bound")
	generateCmd.Flags().IntVar(&coordHi, "hi", 50, "Random: coordinate upper bound")
	generateCmd.Flags().IntVar(&genGridX, "grid-x", 0, "Survey grid columns (enables grid generation)")
	generateCmd.Flags().IntVar(&genGridY, "grid-y", 0, "Survey grid rows (0 = square)")
	generateCmd.Flags().Float64Var(&genStartX, "start-x", 0, "Survey grid entry node X")
	generateCmd.Flags().Float64Var(&genStartY, "start-y", 0, "Survey grid entry node Y")
	generateCmd.Flags().IntVar(&salesmen, "salesmen", 1, "Salesmen count stored in the instance")
	generateCmd.Flags().IntVar(&minCities, "min-cities", 0, "Minimum cities per route stored in the instance")
	generateCmd.Flags().IntVar(&maxCities, "max-cities", 0, "Maximum cities per route stored in the instance")

	rootCmd.AddCommand(generateCmd)
}
