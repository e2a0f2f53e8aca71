package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"qacode/algebra"
	"qacode/internal/render"
)

var witnessCmd = &cobra.Command{
	Use:   "witness",
	Short: "Print a defining polynomial over F_p for each component's residue field",
	RunE:  runWitness,
}

func init() {
	algebraFlags(witnessCmd)
	witnessCmd.Flags().Int("max-degree", 0, "largest residue field degree to search (default from config)")
	rootCmd.AddCommand(witnessCmd)
}

func runWitness(c *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	g, err := analyzeFromFlags(c, cfg)
	if err != nil {
		return err
	}
	maxDeg, _ := c.Flags().GetInt("max-degree")
	if maxDeg <= 0 {
		maxDeg = cfg.Witness.MaxDegree
	}
	ws, err := algebra.Witnesses(c.Context(), g, maxDeg)
	if err != nil {
		return err
	}
	for _, w := range ws {
		fmt.Fprintf(c.OutOrStdout(), "%s\tF_%d[x]/(%s)\n",
			render.CleanName(g, w.Algebra, cfg.Output.StripTrivial), w.Algebra.P, w.Field)
	}
	return nil
}
