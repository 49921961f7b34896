package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prm-planner",
		Short: "Probabilistic roadmap path planner for triangular obstacles",
	}

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func planCmd() *cobra.Command {
	var (
		configFile string
		seed       int64
		svgFile    string
		geojsonOut string
		trace      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a path for the configured plane and query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := DefaultConfig()
			if configFile != "" {
				loaded, err := LoadConfig(configFile)
				if err != nil {
					return err
				}
				cfg = *loaded
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if svgFile != "" {
				cfg.Output.SVG = svgFile
			}
			if geojsonOut != "" {
				cfg.Output.GeoJSON = geojsonOut
			}
			if trace {
				cfg.Output.Trace = true
			}
			return runPlan(&cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	cmd.Flags().Int64Var(&seed, "seed", 4, "random seed for obstacles, query and sampling")
	cmd.Flags().StringVar(&svgFile, "svg", "", "write an SVG rendering of the run")
	cmd.Flags().StringVar(&geojsonOut, "geojson", "", "write obstacles and path as GeoJSON")
	cmd.Flags().BoolVar(&trace, "trace", false, "log obstacles, roadmap hops and shortcuts")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer(port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	return cmd
}
