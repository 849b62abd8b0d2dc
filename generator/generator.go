// Package generator writes a declared namespace to disk, one source file per
// type, through a swappable language provider.
//
// Files land under a directory derived from the namespace: types of
// "Foo.Bar" go to <output>/Foo/Bar/<Type><ext>. Writing is synchronous and
// idempotent; existing files are overwritten and a failure stops the run
// without rolling back files already written.
package generator

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/teranos/codedom/ast"
	"github.com/teranos/codedom/dom"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/logger"
	"github.com/teranos/codedom/provider"
	"github.com/teranos/codedom/provider/csharp"
)

// DefaultTab is the indentation unit used when none is configured.
const DefaultTab = "    "

// FilePlaceholder is replaced with the written file's path in PostFormat.
const FilePlaceholder = "{file}"

// CodeGenerator drives a provider over a namespace.
type CodeGenerator struct {
	// Tab is one indentation level. Empty means DefaultTab.
	Tab string
	// Provider prints the AST. nil means C#.
	Provider provider.Provider
	// Options are forwarded to the provider untouched.
	Options provider.Options
	// PostFormat is an optional formatter command run after each file is
	// written, e.g. "dotnet format whitespace --include {file}". Without
	// the placeholder the path is appended as the last argument.
	PostFormat string

	logger *zap.SugaredLogger
}

// New returns a generator for p with default options.
func New(p provider.Provider) *CodeGenerator {
	return &CodeGenerator{
		Tab:      DefaultTab,
		Provider: p,
		Options:  provider.DefaultOptions(),
		logger:   logger.ComponentLogger("generator"),
	}
}

// WithLogger replaces the component logger.
func (g *CodeGenerator) WithLogger(l *zap.SugaredLogger) *CodeGenerator {
	g.logger = l
	return g
}

func (g *CodeGenerator) provider() provider.Provider {
	if g.Provider == nil {
		return csharp.New()
	}
	return g.Provider
}

func (g *CodeGenerator) tab() string {
	if g.Tab == "" {
		return DefaultTab
	}
	return g.Tab
}

func (g *CodeGenerator) log() *zap.SugaredLogger {
	if g.logger == nil {
		return logger.ComponentLogger("generator")
	}
	return g.logger
}

// File is one rendered type. Path is relative to the output root.
type File struct {
	Path     string
	TypeName string
	Content  []byte
}

// NamespaceDir maps a dotted namespace to its relative directory.
func NamespaceDir(namespace string) string {
	return filepath.Join(strings.Split(namespace, ".")...)
}

// Render prints every type of ns without touching the filesystem. A type
// with no name is written under baseFileName.
func (g *CodeGenerator) Render(ns *dom.NamespaceDeclaration, baseFileName string) ([]File, error) {
	if ns == nil {
		return nil, errors.NewArgumentNullError("namespace")
	}
	p := g.provider()
	node := ns.ToNode()
	dir := NamespaceDir(node.Name)

	files := make([]File, 0, len(node.Types))
	for _, td := range node.Types {
		name := td.Name
		if name == "" {
			name = baseFileName
		}
		if name == "" {
			return nil, errors.NewArgumentNullError("baseFileName")
		}

		single := &ast.Namespace{
			Name:     node.Name,
			Imports:  node.Imports,
			Comments: node.Comments,
			Types:    []*ast.TypeDeclaration{td},
		}
		var buf bytes.Buffer
		if err := p.GenerateNamespace(&buf, single, g.tab(), g.Options); err != nil {
			return nil, errors.Wrapf(err, "failed to render %s.%s", node.Name, name)
		}
		files = append(files, File{
			Path:     filepath.Join(dir, name+p.FileExtension()),
			TypeName: name,
			Content:  buf.Bytes(),
		})
	}
	return files, nil
}

// Generate writes every type of ns below outputPath and returns the written
// paths in declaration order.
func (g *CodeGenerator) Generate(outputPath string, ns *dom.NamespaceDeclaration, baseFileName string) ([]string, error) {
	start := time.Now()
	files, err := g.Render(ns, baseFileName)
	if err != nil {
		return nil, err
	}
	log := logger.ChildLogger(g.log(),
		logger.FieldNamespace, ns.Name(),
		logger.FieldLanguage, g.provider().Language(),
	)

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(outputPath, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, errors.Wrapf(err, "failed to create directory for %s", path)
		}
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return written, errors.Wrapf(err, "failed to write %s", path)
		}
		written = append(written, path)
		log.Debugw("wrote type", logger.FieldType, f.TypeName, logger.FieldFile, path, logger.FieldSize, len(f.Content))

		if g.PostFormat != "" {
			if err := g.postFormat(path); err != nil {
				return written, err
			}
		}
	}

	log.Infow("generated namespace",
		logger.FieldCount, len(written),
		logger.FieldPath, outputPath,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return written, nil
}

// GenerateNamespace prints an already lowered namespace to w as one unit.
func (g *CodeGenerator) GenerateNamespace(w io.Writer, ns *ast.Namespace) error {
	if ns == nil {
		return errors.NewArgumentNullError("namespace")
	}
	return g.provider().GenerateNamespace(w, ns, g.tab(), g.Options)
}

func (g *CodeGenerator) postFormat(path string) error {
	args, err := shellquote.Split(g.PostFormat)
	if err != nil {
		return errors.Wrapf(err, "invalid post-format command %q", g.PostFormat)
	}
	if len(args) == 0 {
		return nil
	}

	substituted := false
	for i, a := range args {
		if strings.Contains(a, FilePlaceholder) {
			args[i] = strings.ReplaceAll(a, FilePlaceholder, path)
			substituted = true
		}
	}
	if !substituted {
		args = append(args, path)
	}

	cmd := exec.Command(args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "post-format of %s failed: %s", path, strings.TrimSpace(string(out)))
	}
	g.log().Debugw("post-formatted", logger.FieldFile, path, logger.FieldCommand, args[0])
	return nil
}
