package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qacode/internal/render"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write an HTML bar chart of the component multiplicities",
	RunE:  runChart,
}

func init() {
	algebraFlags(chartCmd)
	chartCmd.Flags().StringP("output", "o", "decomposition.html", "HTML file to write")
	rootCmd.AddCommand(chartCmd)
}

func runChart(c *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	g, err := analyzeFromFlags(c, cfg)
	if err != nil {
		return err
	}
	path, _ := c.Flags().GetString("output")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	size := render.ChartSize{Width: cfg.Chart.Width, Height: cfg.Chart.Height}
	if err := render.WriteChart(f, render.NewReport(g, cfg.Output.StripTrivial), size); err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), "Decomposition chart:", path)
	return nil
}
