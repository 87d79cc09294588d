package board

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/scrape/source"
	"openroles-engine/internal/scrape/util"
)

// Profile describes one provider family whose hosted board renders posting
// anchors server side.
type Profile struct {
	Type domain.SourceType

	// Posting inspects a same-origin link and, when it points at a job
	// posting, returns the posting id and the canonical posting URL.
	Posting func(page, link *url.URL) (string, *url.URL, bool)

	// TitleSel and LocationSel narrow extraction inside the anchor subtree.
	// Title falls back to the whole anchor text, location to the parent card.
	TitleSel    string
	LocationSel string
}

// board chrome that rides along posting-shaped hrefs
var junkTitles = map[string]bool{
	"apply": true, "apply now": true,
	"view all": true, "all jobs": true, "see all jobs": true,
}

// Adapter scans server-rendered board HTML for posting anchors.
type Adapter struct {
	profile Profile
	hc      *http.Client
}

func New(profile Profile, hc *http.Client) *Adapter {
	return &Adapter{profile: profile, hc: hc}
}

func (a *Adapter) Type() domain.SourceType { return a.profile.Type }

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

	// resolve against the URL that actually served, redirects included
	page := res.Request.URL

	seen := map[string]bool{}
	var out []domain.Job
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		link, ok := util.ResolveHref(page, href)
		if !ok || !util.SameOrigin(page, link) {
			return
		}
		id, jobURL, ok := a.profile.Posting(page, link)
		if !ok {
			return
		}
		title := a.anchorTitle(sel)
		if title == "" || junkTitles[strings.ToLower(title)] {
			return
		}

		canon := util.CanonicalizeURL(jobURL.String())
		if seen[canon] {
			return
		}
		seen[canon] = true

		out = append(out, domain.Job{
			CompanyName: co.Name,
			CareersURL:  co.CareersURL,
			Title:       title,
			Location:    a.anchorLocation(sel),
			URL:         canon,
			SourceType:  a.profile.Type,
			SourceJobID: id,
		})
	})
	return out, nil
}

func (a *Adapter) anchorTitle(sel *goquery.Selection) string {
	if a.profile.TitleSel != "" {
		if t := util.CleanText(sel.Find(a.profile.TitleSel).First().Text()); t != "" {
			return t
		}
	}
	return util.CleanText(sel.Text())
}

// anchorLocation falls back to the sentinel, never the empty string.
func (a *Adapter) anchorLocation(sel *goquery.Selection) string {
	if a.profile.LocationSel != "" {
		if t := util.CleanText(sel.Find(a.profile.LocationSel).First().Text()); t != "" {
			return t
		}
		// some boards keep the location beside the anchor, not inside it
		if t := util.CleanText(sel.Parent().Find(a.profile.LocationSel).First().Text()); t != "" {
			return t
		}
	}
	return domain.LocationNotListed
}
