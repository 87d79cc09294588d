package generic

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/normalize"
	"openroles-engine/internal/scrape/source"
	"openroles-engine/internal/scrape/util"
)

// Adapter is the last-resort strategy for careers pages on a company's own
// site: fetch, parse, and keep same-origin links whose path shape looks
// like a posting. There is no natural job id here, so ids stay empty and
// identity falls back to the URL digest downstream.
type Adapter struct {
	hc *http.Client
}

func New(hc *http.Client) *Adapter { return &Adapter{hc: hc} }

func (a *Adapter) Type() domain.SourceType { return domain.SourceGeneric }

var jobPathTokens = map[string]bool{
	"job": true, "jobs": true,
	"career": true, "careers": true,
	"position": true, "positions": true,
	"opening": true, "openings": true,
	"vacancy": true, "vacancies": true,
	"role": true, "roles": true,
}

var blockedPathTokens = map[string]bool{
	"privacy": true, "terms": true, "legal": true, "cookies": true,
	"login": true, "signin": true, "signup": true, "register": true,
	"blog": true, "news": true, "press": true, "events": true,
	"about": true, "contact": true, "support": true, "security": true,
}

var junkTitles = map[string]bool{
	"apply": true, "apply now": true,
	"learn more": true, "read more": true, "more": true,
	"view all": true, "see all": true, "view job": true, "details": true,
	"all jobs": true, "open positions": true, "open roles": true,
	"careers": true, "jobs": true,
}

func (a *Adapter) ListJobs(ctx context.Context, co domain.Company) ([]domain.Job, error) {
	res, err := source.Get(ctx, a.hc, co.CareersURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &source.ParseError{URL: co.CareersURL, Err: err}
	}

	page := res.Request.URL
	pageCanon := strings.TrimSuffix(util.CanonicalizeURL(page.String()), "/")

	seen := map[string]bool{}
	var out []domain.Job
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		link, ok := util.ResolveHref(page, href)
		if !ok || !util.SameOrigin(page, link) {
			return
		}
		if !looksLikePosting(link) {
			return
		}
		canon := util.CanonicalizeURL(link.String())
		if strings.TrimSuffix(canon, "/") == pageCanon {
			return
		}

		// custom pages glue body copy onto anchors; trim before gating
		title := normalize.CleanTitle(sel.Text())
		if !plausibleTitle(title) {
			return
		}
		// gate before marking, or a junk anchor would claim the URL
		if seen[canon] {
			return
		}
		seen[canon] = true

		out = append(out, domain.Job{
			CompanyName: co.Name,
			CareersURL:  co.CareersURL,
			Title:       title,
			Location:    domain.LocationNotListed,
			URL:         canon,
			SourceType:  domain.SourceGeneric,
		})
	})
	return out, nil
}

// looksLikePosting wants a job-ish path segment followed by a detail
// segment, so listing roots do not count as postings.
func looksLikePosting(link *url.URL) bool {
	var segs []string
	for _, s := range strings.Split(strings.ToLower(link.Path), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	hit := -1
	for i, s := range segs {
		if blockedPathTokens[s] {
			return false
		}
		if hit < 0 && jobPathTokens[s] {
			hit = i
		}
	}
	return hit >= 0 && hit < len(segs)-1
}

func plausibleTitle(t string) bool {
	if len(t) < 3 || len(t) > 200 {
		return false
	}
	// single-word anchors on generic pages are nav chrome, not postings
	if len(strings.Fields(t)) < 2 {
		return false
	}
	return !junkTitles[strings.ToLower(t)]
}
