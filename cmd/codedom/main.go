package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/codedom/am"
	"github.com/teranos/codedom/cmd/codedom/commands"
	"github.com/teranos/codedom/logger"
)

var rootCmd = &cobra.Command{
	Use:   "codedom",
	Short: "codedom - declaration-model code generator",
	Long: `codedom builds C# and Visual Basic source from a language-neutral
declaration model.

Available commands:
  generate    - Generate wrapper types from a descriptor file or Go package
  collection  - Generate a strongly typed collection class
  check       - Verify generated files are up to date
  config      - Show and manage codedom configuration
  version     - Show version information

Examples:
  codedom generate orders.yaml              # Write one file per type under ./generated
  codedom generate --go-package ./model     # Derive descriptors from Go structs
  codedom generate orders.yaml --watch      # Regenerate on change
  codedom collection Widget --stdout        # Print WidgetCollection
  codedom check orders.yaml                 # Fail if ./generated is stale`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput := false
		if cfg, err := am.Load(); err == nil {
			jsonOutput = cfg.Log.JSON
		}
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if logger.JSONOutput {
			pterm.DisableStyling()
		}
		logger.Debugw("Logger ready", "level", logger.LevelName(verbosity))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CollectionCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
