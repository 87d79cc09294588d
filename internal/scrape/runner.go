package scrape

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/scrape/board"
	"openroles-engine/internal/scrape/generic"
	"openroles-engine/internal/scrape/greenhouse"
	"openroles-engine/internal/scrape/render"
	"openroles-engine/internal/scrape/source"
	"openroles-engine/internal/scrape/util"
)

// Result carries one run's raw harvest plus per-company coverage.
type Result struct {
	Jobs     []domain.Job
	Coverage []domain.Coverage
}

// Runner walks the roster one company at a time: classify the careers URL,
// dispatch to the provider adapter, stamp identity, fold the outcome into
// coverage. Companies never run concurrently, so one slow board cannot
// starve another company's provider of connections.
type Runner struct {
	adapters map[domain.SourceType]source.Adapter
	now      func() time.Time
}

func NewRunner() *Runner {
	hc := source.NewHTTPClient()
	return &Runner{
		adapters: map[domain.SourceType]source.Adapter{
			domain.SourceGreenhouse: greenhouse.New(hc),
			domain.SourceLever:      board.Lever(hc),
			domain.SourceBreezy:     board.Breezy(hc),
			domain.SourceRecruitee:  board.Recruitee(hc),
			domain.SourceAshby:      render.Ashby(render.OpenSession),
			domain.SourceWorkable:   render.Workable(render.OpenSession),
			domain.SourceRippling:   render.Rippling(render.OpenSession),
			domain.SourceGeneric:    generic.New(hc),
		},
		now: time.Now,
	}
}

func (r *Runner) Run(ctx context.Context, roster []domain.Company) Result {
	var res Result
	seen := map[string]bool{}

	for _, co := range roster {
		cov := r.scrapeCompany(ctx, co, seen, &res.Jobs)
		res.Coverage = append(res.Coverage, cov)
	}

	// coverage is published sorted so the artifact is stable even when
	// the roster is not
	sort.SliceStable(res.Coverage, func(i, j int) bool {
		return strings.ToLower(res.Coverage[i].CompanyName) < strings.ToLower(res.Coverage[j].CompanyName)
	})

	counts := map[domain.CoverageStatus]int{}
	for _, c := range res.Coverage {
		counts[c.Status]++
	}
	log.Printf("[scrape] done companies=%d jobs=%d ok=%d empty=%d failed=%d unsupported=%d",
		len(roster), len(res.Jobs),
		counts[domain.CoverageOK], counts[domain.CoverageEmpty],
		counts[domain.CoverageFailed], counts[domain.CoverageUnsupported])
	return res
}

func (r *Runner) scrapeCompany(ctx context.Context, co domain.Company, seen map[string]bool, jobs *[]domain.Job) domain.Coverage {
	checked := r.now().UTC().Format(time.RFC3339)
	cov := domain.Coverage{
		CompanyName: co.Name,
		CareersURL:  co.CareersURL,
		LastChecked: checked,
	}

	u, err := source.ParseCareersURL(co.CareersURL)
	if err != nil {
		cov.Status = domain.CoverageUnsupported
		cov.Error = err.Error()
		log.Printf("[scrape] company=%q unsupported: %v", co.Name, err)
		return cov
	}

	st := source.Classify(u)
	cov.SourceType = st
	log.Printf("[scrape:%s] company=%q url=%s", st, co.Name, co.CareersURL)

	ad, ok := r.adapters[st]
	if !ok {
		cov.Status = domain.CoverageUnsupported
		cov.Error = fmt.Sprintf("no adapter for source %s", st)
		log.Printf("[scrape:%s] company=%q unsupported: no adapter", st, co.Name)
		return cov
	}

	listed, err := ad.ListJobs(ctx, co)
	if err != nil {
		// one broken board never fails the run
		cov.Status = domain.CoverageFailed
		cov.Error = err.Error()
		log.Printf("[scrape:%s] company=%q error: %v", st, co.Name, err)
		return cov
	}

	cov.OpenRolesRaw = len(listed)
	if len(listed) == 0 {
		cov.Status = domain.CoverageEmpty
		log.Printf("[scrape:%s] company=%q listed=0", st, co.Name)
		return cov
	}
	cov.Status = domain.CoverageOK

	kept := 0
	for _, j := range listed {
		j.Status = domain.StatusOpen
		j.LastSeenUTC = checked
		if j.JobKey == "" {
			j.JobKey = jobKey(j)
		}
		if seen[j.JobKey] {
			continue
		}
		seen[j.JobKey] = true
		*jobs = append(*jobs, j)
		kept++
	}
	log.Printf("[scrape:%s] company=%q listed=%d kept=%d", st, co.Name, len(listed), kept)
	return cov
}

// jobKey is the cross-run identity of a posting: the provider's own id
// when the source exposes one, else a digest of the canonical URL.
func jobKey(j domain.Job) string {
	id := strings.TrimSpace(j.SourceJobID)
	if id == "" {
		id = util.HashString("url:" + util.CanonicalizeURL(j.URL))[:16]
	}
	return fmt.Sprintf("%s:%s", j.SourceType, id)
}
