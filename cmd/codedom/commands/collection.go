package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/codedom/am"
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/naming"
	"github.com/teranos/codedom/templates"
	"github.com/teranos/codedom/wrapper"
)

// CollectionCmd generates a standalone collection class
var CollectionCmd = &cobra.Command{
	Use:   "collection <element-type>",
	Short: "Generate a strongly typed collection class",
	Long: `Generate <Elem>Collection over System.Collections.CollectionBase with
an indexer and one-line Add, AddRange, Contains, Remove, Insert, IndexOf
and GetEnumerator delegations. Use --skip to drop members and --generic
for a List<T> subclass instead.

Element types may be descriptor builtins (string, int, dateTime),
qualified platform names (System.Uri) or plain names (Widget).

Examples:
  codedom collection Widget --stdout
  codedom collection string -n Acme.Util --class-name Names
  codedom collection Widget --skip insert,index-of -p vb`,
	Args: cobra.ExactArgs(1),
	RunE: runCollection,
}

var (
	collectionFlags     sourceFlags
	collectionClassName string
	collectionSkip      []string
	collectionGeneric   bool
	collectionStdout    bool
)

func init() {
	collectionFlags.register(CollectionCmd)
	CollectionCmd.Flags().StringVar(&collectionClassName, "class-name", "", "Collection class name (default: <Elem>Collection)")
	CollectionCmd.Flags().StringSliceVar(&collectionSkip, "skip", nil, "Members to omit: get, set, add, add-range, contains, remove, insert, index-of, enumerator")
	CollectionCmd.Flags().BoolVar(&collectionGeneric, "generic", false, "Derive from List<T> instead of CollectionBase")
	CollectionCmd.Flags().BoolVar(&collectionStdout, "stdout", false, "Print the generated file instead of writing it")
}

// skipCollectionMembers clears the template flags named in skip.
func skipCollectionMembers(t *templates.CollectionTemplate, skip []string) error {
	flags := map[string]*bool{
		"get":        &t.ItemGet,
		"set":        &t.ItemSet,
		"add":        &t.Add,
		"add-range":  &t.AddRange,
		"contains":   &t.Contains,
		"remove":     &t.Remove,
		"insert":     &t.Insert,
		"index-of":   &t.IndexOf,
		"enumerator": &t.Enumerator,
	}
	for _, s := range skip {
		f, ok := flags[strings.ToLower(strings.TrimSpace(s))]
		if !ok {
			return errors.Newf("unknown collection member %q", s)
		}
		*f = false
	}
	return nil
}

func runCollection(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	collectionFlags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	conformer, err := naming.ByName(cfg.Wrapper.Naming)
	if err != nil {
		return err
	}
	w, err := wrapper.New(cfg.Wrapper.Namespace, wrapper.WithConformer(conformer))
	if err != nil {
		return err
	}
	elem, err := w.MapType(args[0])
	if err != nil {
		return err
	}

	tmpl := templates.NewCollectionTemplate(elem)
	tmpl.ClassName = collectionClassName
	tmpl.Generic = collectionGeneric
	if err := skipCollectionMembers(tmpl, collectionSkip); err != nil {
		return err
	}
	if _, err := tmpl.Generate(w.Namespace()); err != nil {
		return err
	}
	return emitNamespace(cmd, cfg, w.Namespace(), collectionStdout)
}

func emitNamespace(cmd *cobra.Command, cfg *am.Config, ns *dom.NamespaceDeclaration, stdout bool) error {
	gen, err := newCodeGenerator(cfg)
	if err != nil {
		return err
	}
	if stdout {
		files, err := gen.Render(ns, cfg.Generator.BaseFileName)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprint(cmd.OutOrStdout(), f.Content)
		}
		return nil
	}
	written, err := gen.Generate(cfg.GetOutput(), ns, cfg.Generator.BaseFileName)
	if err != nil {
		return err
	}
	for _, p := range written {
		pterm.Success.Printfln("Wrote %s", p)
	}
	return nil
}
