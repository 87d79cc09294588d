// Package build turns a raw scrape snapshot into the published artifacts:
// clean jobs, rejected jobs, per-company summaries and run metadata.
package build

import (
	"log"
	"sort"
	"strings"
	"time"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/normalize"
)

// Output holds everything one build pass produces.
type Output struct {
	Clean     []domain.Job
	Rejected  []domain.Job
	Summaries []domain.Summary
	Meta      domain.Meta
}

// Run normalizes every raw job and joins the result against the roster.
// Records the normalizer rejects are kept verbatim so they can be audited.
func Run(roster []domain.Company, raw []domain.Job, now time.Time) Output {
	out := Output{
		Clean:    make([]domain.Job, 0, len(raw)),
		Rejected: make([]domain.Job, 0),
	}

	for _, r := range raw {
		clean, ok := normalize.Normalize(r)
		if !ok {
			out.Rejected = append(out.Rejected, r)
			continue
		}
		out.Clean = append(out.Clean, clean)
	}

	sort.SliceStable(out.Clean, func(i, j int) bool {
		ci := strings.ToLower(out.Clean[i].CompanyName)
		cj := strings.ToLower(out.Clean[j].CompanyName)
		if ci != cj {
			return ci < cj
		}
		return strings.ToLower(out.Clean[i].Title) < strings.ToLower(out.Clean[j].Title)
	})

	counts := make(map[string]int, len(roster))
	for _, j := range out.Clean {
		counts[j.CompanyName]++
	}

	out.Summaries = make([]domain.Summary, 0, len(roster))
	for _, co := range roster {
		out.Summaries = append(out.Summaries, domain.Summary{
			CompanyName: co.Name,
			CareersURL:  co.CareersURL,
			OpenRoles:   counts[co.Name],
		})
	}
	sort.SliceStable(out.Summaries, func(i, j int) bool {
		return strings.ToLower(out.Summaries[i].CompanyName) < strings.ToLower(out.Summaries[j].CompanyName)
	})

	out.Meta = domain.Meta{
		LastUpdatedUTC: now.UTC().Format(time.RFC3339),
		RawCount:       len(raw),
		CleanCount:     len(out.Clean),
	}

	log.Printf("[build] raw=%d clean=%d rejected=%d companies=%d",
		len(raw), len(out.Clean), len(out.Rejected), len(roster))
	return out
}
