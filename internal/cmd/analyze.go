package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"qacode/algebra"
	"qacode/internal/render"
	"qacode/prof"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Decompose F_q[G] and print its simple components",
	Long: `Decompose the group algebra GF(p^t)[G] for G = Z/n_1 + ... + Z/n_k and print
the dimension, complexity, semisimplicity and the table of simple components
with their multiplicities, followed by a dimension check.`,
	Example: `  qacode analyze -p 2 -t 1 --param "5, 5, 32"
  qacode analyze -p 3 --param 8 --witness --format json`,
	RunE: runAnalyze,
}

func init() {
	algebraFlags(analyzeCmd)
	analyzeCmd.Flags().Bool("witness", false, "also print a defining polynomial for each residue field")
	analyzeCmd.Flags().Int("max-degree", 0, "largest residue field degree to search a witness for (default from config)")
	analyzeCmd.Flags().Bool("timings", false, "print time spent per analysis stage")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(c *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	timings, _ := c.Flags().GetBool("timings")
	if timings {
		prof.Enable(true)
		defer prof.Enable(false)
		prof.SnapshotAndReset()
	}

	g, err := analyzeFromFlags(c, cfg)
	if err != nil {
		return err
	}
	r := render.NewReport(g, cfg.Output.StripTrivial)

	if withWitness, _ := c.Flags().GetBool("witness"); withWitness {
		maxDeg, _ := c.Flags().GetInt("max-degree")
		if maxDeg <= 0 {
			maxDeg = cfg.Witness.MaxDegree
		}
		ws, err := algebra.Witnesses(c.Context(), g, maxDeg)
		if err != nil {
			return err
		}
		r.AddWitnesses(g, ws, cfg.Output.StripTrivial)
	}

	out := c.OutOrStdout()
	switch cfg.Output.Format {
	case "json":
		err = render.WriteJSON(out, r)
	default:
		err = render.WriteTable(out, r)
	}
	if err != nil {
		return err
	}
	if !r.Verified {
		return fmt.Errorf("%s: %s", g, r.VerifyError)
	}
	if timings {
		return render.WriteTimings(out, prof.Totals(prof.SnapshotAndReset()))
	}
	return nil
}
