package generator

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/codedom/errors"
	"github.com/teranos/codedom/provider"
)

// CheckResult holds the outcome of comparing fresh output with a checked-in tree.
type CheckResult struct {
	UpToDate bool
	// Changed lists files whose content differs.
	Changed []string
	// Missing lists files generated fresh but absent from the existing tree.
	Missing []string
	// Stale lists files in the existing tree that generation no longer produces.
	Stale []string
}

// CompareDirectories compares freshDir with existingDir file by file. Paths
// in the result are relative. Generator version lines are ignored so a new
// build alone never marks output stale.
func CompareDirectories(freshDir, existingDir string) (*CheckResult, error) {
	fresh, err := listFiles(freshDir)
	if err != nil {
		return nil, err
	}
	existing, err := listFiles(existingDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	result := &CheckResult{}
	for rel := range fresh {
		if !existing[rel] {
			result.Missing = append(result.Missing, rel)
			continue
		}
		different, err := filesAreDifferent(filepath.Join(freshDir, rel), filepath.Join(existingDir, rel))
		if err != nil {
			return nil, err
		}
		if different {
			result.Changed = append(result.Changed, rel)
		}
	}
	for rel := range existing {
		if !fresh[rel] {
			result.Stale = append(result.Stale, rel)
		}
	}

	sort.Strings(result.Changed)
	sort.Strings(result.Missing)
	sort.Strings(result.Stale)
	result.UpToDate = len(result.Changed)+len(result.Missing)+len(result.Stale) == 0
	return result, nil
}

func listFiles(root string) (map[string]bool, error) {
	files := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[rel] = true
		return nil
	})
	if err != nil {
		return files, errors.Wrapf(err, "failed to walk %s", root)
	}
	return files, nil
}

func filesAreDifferent(file1, file2 string) (bool, error) {
	content1, err := os.ReadFile(file1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file1)
	}
	content2, err := os.ReadFile(file2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file2)
	}
	if bytes.Equal(content1, content2) {
		return false, nil
	}
	lines1, err := filterVersionLines(content1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to scan %s", file1)
	}
	lines2, err := filterVersionLines(content2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to scan %s", file2)
	}
	return lines1 != lines2, nil
}

// filterVersionLines drops the header line carrying the generator version.
func filterVersionLines(content []byte) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, provider.VersionMarker) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String(), scanner.Err()
}
