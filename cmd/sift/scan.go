package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/emezenwere/sift"
	"github.com/olekukonko/tablewriter"
)

// defaultDomains is the demo batch analyzed when no domains are given.
var defaultDomains = []string{
	"tonestro.com",
	"sendtrumpet.com",
	"prewave.com",
	"twinn.health",
	"kokoon.io",
}

// maxCellWidth caps table cell content so rows stay readable.
const maxCellWidth = 48

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	domains, err := c.collectDomains()
	if err != nil {
		return err
	}

	results := deps.Analyzer.AnalyzeAll(deps.Ctx, domains)

	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", result.Domain, sift.ErrorMessage(result.Err))
		}
	}

	if c.JSON {
		return writeJSON(deps, results)
	}
	return writeTable(deps, results)
}

// collectDomains merges positional arguments with the domains file, falling
// back to the demo list when neither is given.
func (c *ScanCmd) collectDomains() ([]string, error) {
	domains := append([]string(nil), c.Domains...)

	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("open domains file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			domains = append(domains, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read domains file: %w", err)
		}
	}

	if len(domains) == 0 {
		domains = defaultDomains
	}
	return domains, nil
}

func writeJSON(deps *Dependencies, results []*sift.Result) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeTable(deps *Dependencies, results []*sift.Result) error {
	table := tablewriter.NewWriter(deps.Stdout)
	table.SetHeader([]string{"Domain", "Company", "Description", "Founders", "Products"})
	table.SetAutoWrapText(false)

	for _, r := range results {
		var products []string
		if !r.Products.Empty() {
			products = r.Products.Products
		}
		table.Append([]string{
			r.Domain,
			truncate(r.CompanyName),
			truncate(r.Description),
			truncate(strings.Join(r.Founders.Sorted(), "; ")),
			truncate(strings.Join(products, "; ")),
		})
	}

	table.Render()
	return nil
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellWidth {
		return s
	}
	return string(runes[:maxCellWidth-1]) + "…"
}
