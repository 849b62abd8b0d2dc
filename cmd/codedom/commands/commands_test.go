package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/codedom/am"
	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/generator"
	"github.com/teranos/codedom/schema"
	"github.com/teranos/codedom/templates"
)

const ordersDoc = `
format: "1.0.0"
namespace: Shop.Model
types:
  - name: Status
    kind: enum
    members:
      - name: Open
      - name: Closed
  - name: Order
    fields:
      - name: id
        type: string
        attribute: id
      - name: status
        type: Status
      - name: lines
        type: Line[]
  - name: Line
    fields:
      - name: sku
        type: string
`

// isolate points HOME and the working directory at fresh temp dirs so no
// real config leaks into the test.
func isolate(t *testing.T) string {
	t.Helper()
	am.Reset()
	t.Cleanup(am.Reset)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeDoc(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ordersDoc), 0644))
	return path
}

func resetGenerateFlags() {
	generateFlags = sourceFlags{}
	generateWatch = false
	generateStdout = false
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_WritesOneFilePerType(t *testing.T) {
	dir := isolate(t)
	doc := writeDoc(t, dir)
	resetGenerateFlags()
	t.Cleanup(resetGenerateFlags)

	out := filepath.Join(dir, "out")
	_, err := execute(t, GenerateCmd, doc, "-o", out)
	require.NoError(t, err)

	for _, name := range []string{"Status.cs", "Order.cs", "Line.cs"} {
		assert.FileExists(t, filepath.Join(out, "Shop", "Model", name))
	}
	order, err := os.ReadFile(filepath.Join(out, "Shop", "Model", "Order.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(order), "namespace Shop.Model")
	assert.Contains(t, string(order), "public class Order")
}

func TestGenerate_StdoutVB(t *testing.T) {
	dir := isolate(t)
	doc := writeDoc(t, dir)
	resetGenerateFlags()
	t.Cleanup(resetGenerateFlags)

	text, err := execute(t, GenerateCmd, doc, "--stdout", "-p", "vb")
	require.NoError(t, err)
	assert.Contains(t, text, "Namespace Shop.Model")
	assert.Contains(t, text, "Public Enum Status")
	assert.NoDirExists(t, filepath.Join(dir, "generated"))
}

func TestGenerate_RejectsWatchWithStdout(t *testing.T) {
	dir := isolate(t)
	doc := writeDoc(t, dir)
	resetGenerateFlags()
	t.Cleanup(resetGenerateFlags)

	_, err := execute(t, GenerateCmd, doc, "--stdout", "--watch")
	require.Error(t, err)
}

func TestLoadDocument(t *testing.T) {
	_, err := loadDocument("", "", "X")
	assert.True(t, errors.IsArgumentNullError(err))

	_, err = loadDocument("a.yaml", "./pkg", "X")
	require.Error(t, err)

	_, err = loadDocument("a.xsd", "", "X")
	assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
}

func TestBuildNamespace_DocumentNamespaceWins(t *testing.T) {
	doc, err := schema.Parse([]byte(ordersDoc), schema.EncodingYAML)
	require.NoError(t, err)

	cfg := am.Default()
	cfg.Wrapper.Namespace = "Ignored"
	ns, err := buildNamespace(cfg, doc)
	require.NoError(t, err)
	assert.Equal(t, "Shop.Model", ns.Name())
	assert.Equal(t, 3, ns.Len())

	doc.Namespace = ""
	ns, err = buildNamespace(cfg, doc)
	require.NoError(t, err)
	assert.Equal(t, "Ignored", ns.Name())
}

func TestNewCodeGenerator(t *testing.T) {
	cfg := am.Default()
	cfg.Generator.Provider = "vb"
	cfg.Generator.Tab = "\t"
	cfg.Generator.PostFormat = "true {file}"

	g, err := newCodeGenerator(cfg)
	require.NoError(t, err)
	assert.Equal(t, ".vb", g.Provider.FileExtension())
	assert.Equal(t, "\t", g.Tab)
	assert.Equal(t, "true {file}", g.PostFormat)

	cfg.Generator.Provider = "pascal"
	_, err = newCodeGenerator(cfg)
	assert.True(t, errors.Is(err, errors.ErrUnknownProvider))
}

func TestSkipCollectionMembers(t *testing.T) {
	tmpl := templates.NewCollectionTemplate(nil)
	require.NoError(t, skipCollectionMembers(tmpl, []string{"insert", " Index-Of", "set"}))
	assert.False(t, tmpl.Insert)
	assert.False(t, tmpl.IndexOf)
	assert.False(t, tmpl.ItemSet)
	assert.True(t, tmpl.ItemGet)
	assert.True(t, tmpl.Add)

	assert.Error(t, skipCollectionMembers(tmpl, []string{"sort"}))
}

func TestCollection_Stdout(t *testing.T) {
	isolate(t)
	t.Cleanup(func() {
		collectionFlags = sourceFlags{}
		collectionSkip = nil
		collectionStdout = false
		collectionClassName = ""
	})

	text, err := execute(t, CollectionCmd, "Widget", "--stdout", "-n", "Acme.Util", "--skip", "insert")
	require.NoError(t, err)
	assert.Contains(t, text, "public class WidgetCollection : System.Collections.CollectionBase")
	assert.Contains(t, text, "public int Add(Widget widget)")
	assert.NotContains(t, text, "Insert(")
}

func TestCheck_ReportsOutOfDate(t *testing.T) {
	dir := isolate(t)
	doc := writeDoc(t, dir)
	t.Cleanup(func() { checkFlags = sourceFlags{} })

	out := filepath.Join(dir, "out")
	_, err := execute(t, CheckCmd, doc, "-o", out)
	assert.True(t, errors.Is(err, ErrOutOfDate))

	resetGenerateFlags()
	t.Cleanup(resetGenerateFlags)
	_, err = execute(t, GenerateCmd, doc, "-o", out)
	require.NoError(t, err)

	checkFlags = sourceFlags{}
	_, err = execute(t, CheckCmd, doc, "-o", out)
	assert.NoError(t, err)
}

func TestReportCheck(t *testing.T) {
	err := reportCheck(&generator.CheckResult{UpToDate: []string{"a.cs"}}, "out")
	assert.NoError(t, err)

	err = reportCheck(&generator.CheckResult{Stale: []string{"old.cs"}}, "out")
	assert.True(t, errors.Is(err, ErrOutOfDate))
}

func TestMarshalConfig(t *testing.T) {
	cfg := am.Default()
	for _, format := range []string{"toml", "json", "yaml"} {
		data, err := marshalConfig(cfg, format)
		require.NoError(t, err, format)
		assert.Contains(t, string(data), "base_file_name", format)
	}
	_, err := marshalConfig(cfg, "ini")
	assert.Error(t, err)
}

func TestWriteDefaultConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", am.ConfigFileName)
	require.NoError(t, writeDefaultConfig(path, false))

	cfg, err := am.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, am.Default(), cfg)

	assert.Error(t, writeDefaultConfig(path, false))
	assert.NoError(t, writeDefaultConfig(path, true))
}

func TestVersion(t *testing.T) {
	text, err := execute(t, VersionCmd)
	require.NoError(t, err)
	assert.Contains(t, text, "codedom")

	text, err = execute(t, VersionCmd, "--json")
	require.NoError(t, err)
	assert.Contains(t, text, `"go_version"`)
}
