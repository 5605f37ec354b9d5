// Package destination infers where generated files go when the caller does
// not say. The convention: the input file's grandparent directory is the
// solution root, and output lands in
// <root>/<rootName>.BusinessLibrary/BO/<targetName> with a namespace derived
// from that relative path.
package destination

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Resolution is the inferred output location. Namespace is empty when the
// heuristic fell back to a flat directory and has no override to offer.
type Resolution struct {
	Dir       string
	Namespace string
}

// Resolve picks the destination directory and namespace for an input file.
// The directory is created if missing; repeated calls are idempotent.
func Resolve(inputPath string) (Resolution, error) {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		abs = inputPath
	}

	dir := filepath.Dir(abs)
	parent := filepath.Dir(dir)
	root := filepath.Dir(parent)

	tooShallow := parent == dir || root == parent
	if tooShallow || !dirExists(root) {
		if dirExists(dir) {
			return Resolution{Dir: dir}, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return Resolution{}, fmt.Errorf("resolve working directory: %w", err)
		}
		return Resolution{Dir: wd}, nil
	}

	base := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	target := StripModulePrefix(base)

	sub := filepath.Join(filepath.Base(root)+".BusinessLibrary", "BO", target)
	outDir := filepath.Join(root, sub)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Resolution{}, fmt.Errorf("create destination directory: %w", err)
	}

	return Resolution{
		Dir:       outDir,
		Namespace: strings.ReplaceAll(sub, string(filepath.Separator), "."),
	}, nil
}

// StripModulePrefix drops a two-letter upper-case module prefix from a file
// base name ("ABCustomer" becomes "Customer"). This is a naming convention,
// not a general rule; change or disable it here without touching Resolve.
func StripModulePrefix(name string) string {
	if len(name) > 2 && unicode.IsUpper(rune(name[0])) && unicode.IsUpper(rune(name[1])) {
		return name[2:]
	}
	return name
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
