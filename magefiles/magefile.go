//go:build mage

// Package main contains Mage build targets for parole-review developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "parole-review"
	cmdPkg     = "./cmd/parole-review"
	exportsDir = "exports"
	configFile = "parole-review.yaml"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the CLI binary into bin/ with the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + gitVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

const sampleConfig = `# parole-review configuration. Environment variables use the
# PAROLE_REVIEW_ prefix, e.g. PAROLE_REVIEW_API_BASE_URL.
api:
  base_url: http://localhost:8000
  user_agent: parole-review/0.1
  timeout: 0s
upload:
  max_size: 10485760
store:
  path: parole-review.db
  seed_demo: true
export:
  dir: exports
  details: false
log_level: info
`

// Init creates the exports directory and a starter config file.
func Init() error {
	if err := os.MkdirAll(exportsDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", exportsDir, err)
	}
	fmt.Println("  ", exportsDir)

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("   %s exists, left unchanged\n", configFile)
	} else {
		if err := os.WriteFile(configFile, []byte(sampleConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configFile, err)
		}
		fmt.Println("  ", configFile)
	}
	fmt.Println("Project initialized.")
	return nil
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// countGoLines counts non-blank lines in production and test Go files.
func countGoLines(root string) (prod, test int, err error) {
	err = walkFiles(root, func(path string, data []byte) {
		if filepath.Ext(path) != ".go" {
			return
		}
		n := 0
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
	})
	return prod, test, err
}

// countDocWords counts words in top-level Markdown files.
func countDocWords(root string) (int, error) {
	total := 0
	err := walkFiles(root, func(path string, data []byte) {
		if filepath.Ext(path) == ".md" {
			total += len(strings.Fields(string(data)))
		}
	})
	return total, err
}

// walkFiles calls fn for every regular file under root, skipping hidden
// and underscore-prefixed directories.
func walkFiles(root string, fn func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fn(path, data)
		return nil
	})
}

func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}
