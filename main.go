package main

import (
	"fmt"
	"log"
	"os"

	"hirelens/app"
	"hirelens/internal"
	"hirelens/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	var inputFile string
	var outputDir string

	rootCmd := &cobra.Command{
		Use:   "hirelens",
		Short: "Analyze the COVID-19 impact on AI hiring rate trends",
		Long: `hirelens loads a table of year-over-year relative AI hiring rates
(one country per row, one column per year 2018-2023), compares the
Pre-COVID, During-COVID and Post-COVID periods, and writes four charts
plus a markdown/HTML report to the output directory.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using system environment variables")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if inputFile != "" {
				cfg.Data.InputFile = inputFile
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}

			pipeline := app.NewPipelineService(cfg, internal.DefaultLogger)
			result, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(result.Summary)
			fmt.Printf("Charts and reports written to %s\n", cfg.Output.Dir)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&inputFile, "input", "", "hiring-rate CSV or XLSX file (overrides HIRING_DATA_FILE)")
	rootCmd.Flags().StringVar(&outputDir, "output", "", "artifact output directory (overrides OUTPUT_DIR)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
