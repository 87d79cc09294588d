// Package roster loads the company roster that drives a scrape run.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"openroles-engine/internal/domain"
)

// Load reads a roster CSV with a company_name,careers_url header row.
// Column order is taken from the header. Rows with an empty company
// name are skipped, and a repeated company name keeps its first row.
func Load(path string) ([]domain.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	companies, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return companies, nil
}

// Parse reads roster rows from r. Split from Load so tests can feed
// inline CSV without touching the filesystem.
func Parse(r io.Reader) ([]domain.Company, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	nameIdx, urlIdx := -1, -1
	for i, h := range header {
		// A UTF-8 BOM on the first cell is common in exported sheets.
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		switch strings.ToLower(h) {
		case "company_name":
			nameIdx = i
		case "careers_url":
			urlIdx = i
		}
	}
	if nameIdx < 0 || urlIdx < 0 {
		return nil, fmt.Errorf("header must contain company_name and careers_url, got %q", header)
	}

	var companies []domain.Company
	seen := make(map[string]bool)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) <= nameIdx || len(row) <= urlIdx {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}
		if seen[name] {
			log.Printf("[roster] duplicate company %q skipped", name)
			continue
		}
		seen[name] = true
		companies = append(companies, domain.Company{
			Name:       name,
			CareersURL: strings.TrimSpace(row[urlIdx]),
		})
	}
	return companies, nil
}
