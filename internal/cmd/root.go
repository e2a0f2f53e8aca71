package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qacode/algebra"
	"qacode/internal/config"
)

var log = logging.Logger("cmd")

var rootCmd = &cobra.Command{
	Use:   "qacode",
	Short: "Wedderburn decomposition of abelian group algebras over finite fields",
	Long: `qacode computes the Wedderburn decomposition of the group algebra F_q[G]
of a finite abelian group G over GF(p^t). It reports whether the algebra is
semisimple, whether it is local, and otherwise lists its simple components
with multiplicities. This is the structure behind quasi-abelian codes.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is $HOME/.config/qacode/qacode.yaml)")
	pf.Bool("validate-prime", true, "reject a composite characteristic")
	pf.Int("parallelism", 1, "sub-algebras analyzed concurrently")
	pf.String("format", "table", "output format: table or json")
	pf.Bool("strip-trivial", true, "drop the trailing [1] of components of semisimple algebras")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("analysis.validate_prime", pf.Lookup("validate-prime"))
	_ = viper.BindPFlag("analysis.parallelism", pf.Lookup("parallelism"))
	_ = viper.BindPFlag("output.format", pf.Lookup("format"))
	_ = viper.BindPFlag("output.strip_trivial", pf.Lookup("strip-trivial"))
	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("qacode")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("QACODE")
	// QACODE_ANALYSIS_VALIDATE_PRIME for analysis.validate_prime
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing config file is fine
	_ = viper.ReadInConfig()
}

// setup loads the configuration and applies the log level.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	lvl, err := logging.LevelFromString(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
	}
	logging.SetAllLoggers(lvl)
	return cfg, nil
}

// algebraFlags adds the -p/-t/--param triple shared by every subcommand.
func algebraFlags(c *cobra.Command) {
	c.Flags().Int64P("characteristic", "p", 2, "characteristic p (prime)")
	c.Flags().Int64P("power", "t", 1, "field power t, q = p^t")
	c.Flags().String("param", "5, 5, 32", "invariant factors of G, comma separated")
}

// analyzeFromFlags parses the shared flags and runs the decomposition.
func analyzeFromFlags(c *cobra.Command, cfg *config.Config) (*algebra.GroupAlgebra, error) {
	p, _ := c.Flags().GetInt64("characteristic")
	t, _ := c.Flags().GetInt64("power")
	raw, _ := c.Flags().GetString("param")

	param, err := ParseParam(raw)
	if err != nil {
		return nil, fmt.Errorf("input error: %w", err)
	}
	g, err := algebra.Analyze(c.Context(), p, t, param,
		algebra.WithPrimeValidation(cfg.Analysis.ValidatePrime),
		algebra.WithParallelism(cfg.Analysis.Parallelism),
	)
	var de *algebra.DomainError
	if errors.As(err, &de) {
		return nil, fmt.Errorf("input error: %w", err)
	}
	if err != nil {
		return nil, err
	}
	log.Debugw("analyzed", "algebra", g.String(), "fingerprint", g.Key().Fingerprint())
	return g, nil
}
