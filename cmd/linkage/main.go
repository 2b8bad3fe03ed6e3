// Command linkage ищет связи между новыми компонентами и уже описанными
// Enabling/Dependent-компонентами по схожести описаний.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"component-linker/internal/config"
)

var (
	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "linkage",
	Short: "Find candidate Enabling/Dependent linkages for new components",
	Long: "Reads " + config.InputFile + ", compares each new component description with the existing " +
		"Enabling and Dependent descriptions and writes pairs with similarity >= 0.6 to " + config.OutputFile + ".",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		cfg = config.Load()
		logger = config.SetupLogger(cfg)
	},
	RunE: runBatch,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
