package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/codedom/am"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/logger"
)

// GenerateCmd generates wrapper types
var GenerateCmd = &cobra.Command{
	Use:   "generate [descriptor]",
	Short: "Generate wrapper types from a descriptor file or Go package",
	Long: `Generate one source file per type from a descriptor document
(.yaml, .yml, .json, .toml) or from the structs and enums of a Go package.

Files are written to <out>/<namespace as directories>/<Type>.<ext>.

Examples:
  codedom generate orders.yaml
  codedom generate orders.toml -p vb -o src/Generated
  codedom generate --go-package ./model -n Acme.Model
  codedom generate orders.yaml --stdout
  codedom generate orders.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var (
	generateFlags  sourceFlags
	generateWatch  bool
	generateStdout bool
)

func init() {
	generateFlags.register(GenerateCmd)
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when the descriptor or config changes")
	GenerateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print generated files instead of writing them")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	if generateWatch && generateStdout {
		return errors.New("--watch and --stdout cannot be combined")
	}

	if err := generateOnce(cmd, path, cmd.OutOrStdout()); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndGenerate(ctx, cmd, path)
}

func generateOnce(cmd *cobra.Command, path string, out io.Writer) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	generateFlags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	doc, err := loadDocument(path, generateFlags.goPackage, cfg.Wrapper.Namespace)
	if err != nil {
		return err
	}
	if verbosity, _ := cmd.Flags().GetCount("verbose"); logger.ShouldLogTrace(verbosity) {
		for _, t := range doc.Types {
			logger.Debugw("Descriptor type",
				logger.FieldType, t.Name,
				logger.FieldKind, string(t.Kind),
				logger.FieldCount, len(t.Fields)+len(t.Members))
		}
	}
	ns, err := buildNamespace(cfg, doc)
	if err != nil {
		return err
	}
	gen, err := newCodeGenerator(cfg)
	if err != nil {
		return err
	}

	if generateStdout {
		files, err := gen.Render(ns, cfg.Generator.BaseFileName)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(out, "// ---- %s\n%s", f.Path, f.Content)
		}
		return nil
	}

	written, err := gen.Generate(cfg.GetOutput(), ns, cfg.Generator.BaseFileName)
	if err != nil {
		return err
	}
	logger.Infow("Generation complete",
		logger.FieldNamespace, ns.Name(),
		logger.FieldCount, len(written),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	pterm.Success.Printfln("Generated %d files in %s", len(written), cfg.GetOutput())
	return nil
}

func watchAndGenerate(ctx context.Context, cmd *cobra.Command, path string) error {
	var paths []string
	if path != "" {
		paths = append(paths, path)
	}
	if p := am.FindProjectConfig(); p != "" {
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return errors.New("nothing to watch: pass a descriptor file or add a codedom.toml")
	}

	w, err := am.NewWatcher(paths...)
	if err != nil {
		return err
	}
	defer w.Stop()

	w.OnChange(func(changed string) error {
		am.Reset()
		pterm.Info.Printfln("%s changed, regenerating", changed)
		if err := generateOnce(cmd, path, cmd.OutOrStdout()); err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
		return nil
	})
	w.Start()

	pterm.Info.Printfln("Watching %d files (Ctrl+C to stop)", len(paths))
	select {
	case <-ctx.Done():
	case <-w.Done():
	}
	return nil
}
