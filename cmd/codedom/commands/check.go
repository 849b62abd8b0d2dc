package commands

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/generator"
)

// CheckCmd verifies generated output is current
var CheckCmd = &cobra.Command{
	Use:   "check [descriptor]",
	Short: "Verify generated files are up to date",
	Long: `Regenerate into a temporary directory and compare it with the
configured output root. Version banner lines are ignored.

Exits non-zero when any file is changed, missing or stale.

Examples:
  codedom check orders.yaml
  codedom check --go-package ./model -o src/Generated`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var checkFlags sourceFlags

// ErrOutOfDate is returned by check when generated files differ.
var ErrOutOfDate = errors.New("generated files are out of date")

func init() {
	checkFlags.register(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	checkFlags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	doc, err := loadDocument(path, checkFlags.goPackage, cfg.Wrapper.Namespace)
	if err != nil {
		return err
	}
	ns, err := buildNamespace(cfg, doc)
	if err != nil {
		return err
	}
	gen, err := newCodeGenerator(cfg)
	if err != nil {
		return err
	}

	fresh, err := os.MkdirTemp("", "codedom-check-")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(fresh)

	if _, err := gen.Generate(fresh, ns, cfg.Generator.BaseFileName); err != nil {
		return err
	}
	result, err := generator.CompareDirectories(fresh, cfg.GetOutput())
	if err != nil {
		return err
	}
	return reportCheck(result, cfg.GetOutput())
}

func reportCheck(result *generator.CheckResult, output string) error {
	for _, f := range result.Changed {
		pterm.Warning.Printfln("changed: %s", filepath.Join(output, f))
	}
	for _, f := range result.Missing {
		pterm.Warning.Printfln("missing: %s", filepath.Join(output, f))
	}
	for _, f := range result.Stale {
		pterm.Warning.Printfln("stale:   %s", filepath.Join(output, f))
	}
	if len(result.Changed)+len(result.Missing)+len(result.Stale) > 0 {
		return errors.WithHint(ErrOutOfDate, "run codedom generate to update them")
	}
	pterm.Success.Printfln("%d files up to date", len(result.UpToDate))
	return nil
}
