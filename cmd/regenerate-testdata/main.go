// Command regenerate-testdata rewrites the expected outputs of the parser
// test cases from their query.cql inputs.
//
// For every directory under parser/testdata it writes expected.cql, the
// formatted statements, and explain.txt, the tree dump.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqlc-dev/cqlast/parser"
)

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	dryRun := flag.Bool("dry-run", false, "Print what would be done without making changes")
	flag.Parse()

	testdataDir := "parser/testdata"

	if *testName != "" {
		if err := processTest(filepath.Join(testdataDir, *testName), *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *testName, err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var processed, skipped, errors int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		testDir := filepath.Join(testdataDir, entry.Name())
		if err := processTest(testDir, *dryRun); err != nil {
			if strings.Contains(err.Error(), "no statements found") {
				skipped++
			} else {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", entry.Name(), err)
				errors++
			}
		} else {
			processed++
		}
	}

	fmt.Printf("\nProcessed: %d, Skipped: %d, Errors: %d\n", processed, skipped, errors)
	if errors > 0 {
		os.Exit(1)
	}
}

func processTest(testDir string, dryRun bool) error {
	results, err := parser.ParseFile(context.Background(), filepath.Join(testDir, "query.cql"))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no statements found")
	}

	testName := filepath.Base(testDir)
	if dryRun {
		fmt.Printf("Would process %s (%d statements)\n", testName, len(results))
		for i, r := range results {
			fmt.Printf("  [%d] %s\n", i+1, truncate(r.Statement.String(), 60))
		}
		return nil
	}

	var explained strings.Builder
	var failed int
	for _, r := range results {
		if r.HasError {
			failed++
		}
		for _, stmt := range r.Statements() {
			explained.WriteString(parser.Explain(stmt))
		}
	}

	expected := parser.FormatResults(results) + "\n"
	if err := os.WriteFile(filepath.Join(testDir, "expected.cql"), []byte(expected), 0644); err != nil {
		return fmt.Errorf("writing expected.cql: %w", err)
	}
	if err := os.WriteFile(filepath.Join(testDir, "explain.txt"), []byte(explained.String()), 0644); err != nil {
		return fmt.Errorf("writing explain.txt: %w", err)
	}

	if failed > 0 {
		fmt.Printf("%s: %d stmts, %d with unrecognized text\n", testName, len(results), failed)
	} else {
		fmt.Printf("%s: %d stmts OK\n", testName, len(results))
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
