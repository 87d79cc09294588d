package render

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/scrape/source"
	"openroles-engine/internal/scrape/util"
)

// Anchor is one rendered link harvested from a settled page. Text is the
// innerText of the anchor, rendered line breaks preserved; Block is the
// innerText of the anchor's enclosing element, for boards that render
// posting metadata beside the link instead of inside it.
type Anchor struct {
	Href  string
	Text  string
	Block string
}

// Renderer is one ephemeral browser session. *Session implements it;
// tests swap in canned anchors.
type Renderer interface {
	Anchors(ctx context.Context, pageURL string, waitUntil *playwright.WaitUntilState, settle time.Duration) (string, []Anchor, error)
	Close()
}

// OpenSession is the production session factory.
func OpenSession() (Renderer, error) {
	s, err := NewSession()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Profile describes one provider family whose board only exists after
// client-side rendering.
type Profile struct {
	Type      domain.SourceType
	WaitUntil *playwright.WaitUntilState
	Settle    time.Duration

	// Posting inspects a same-origin link and, when it points at a job
	// posting, returns the posting id and the canonical posting URL.
	Posting func(page, link *url.URL) (string, *url.URL, bool)

	// BlockHint also scans the anchor's enclosing block for a line that
	// leads with a work-mode word when the anchor text itself gave no
	// location.
	BlockHint bool
}

// board chrome that rides along posting-shaped hrefs
var junkTitles = map[string]bool{
	"apply": true, "apply now": true,
	"view all": true, "all jobs": true, "see all jobs": true,
}

// Adapter renders the careers page in a browser session and scans the
// settled DOM for posting anchors. Every call owns its session: opened
// here, torn down here, on success and on error alike.
type Adapter struct {
	profile Profile
	open    func() (Renderer, error)
}

func New(profile Profile, open func() (Renderer, error)) *Adapter {
	return &Adapter{profile: profile, open: open}
}

func (a *Adapter) Type() domain.SourceType { return a.profile.Type }

func (a *Adapter) ListJobs(ctx context.Context, co domain.Company) ([]domain.Job, error) {
	base, err := source.ParseCareersURL(co.CareersURL)
	if err != nil {
		return nil, &source.ParseError{URL: co.CareersURL, Err: err}
	}

	sess, err := a.open()
	if err != nil {
		return nil, &source.FetchError{URL: co.CareersURL, Err: err}
	}
	defer sess.Close()

	finalURL, anchors, err := sess.Anchors(ctx, co.CareersURL, a.profile.WaitUntil, a.profile.Settle)
	if err != nil {
		if isTimeout(err) {
			return nil, &source.RenderTimeoutError{URL: co.CareersURL, Err: err}
		}
		return nil, &source.FetchError{URL: co.CareersURL, Err: err}
	}
	if finalURL != "" {
		if u, perr := url.Parse(finalURL); perr == nil && u.Host != "" {
			base = u
		}
	}

	seen := map[string]bool{}
	var out []domain.Job
	for _, an := range anchors {
		link, ok := util.ResolveHref(base, an.Href)
		if !ok || !util.SameOrigin(base, link) {
			continue
		}
		id, jobURL, ok := a.profile.Posting(base, link)
		if !ok {
			continue
		}
		canon := util.CanonicalizeURL(jobURL.String())
		title, hint := titleAndHint(an.Text)
		if title == "" || junkTitles[strings.ToLower(title)] {
			continue
		}
		// gate before marking, or a junk anchor would claim the
		// posting URL
		if seen[canon] {
			continue
		}
		seen[canon] = true

		if hint == "" && a.profile.BlockHint {
			hint = blockHint(an.Block)
		}
		if hint == "" {
			hint = domain.LocationNotListed
		}

		out = append(out, domain.Job{
			CompanyName: co.Name,
			CareersURL:  co.CareersURL,
			Title:       title,
			Location:    hint,
			URL:         canon,
			SourceType:  a.profile.Type,
			SourceJobID: id,
		})
	}
	return out, nil
}

// titleAndHint splits rendered anchor text into the title line and a
// location-looking line from the trailing metadata, if any.
func titleAndHint(text string) (string, string) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = util.CleanText(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}
	title := lines[0]
	for _, ln := range lines[1:] {
		if looksLikeLocation(ln) {
			return title, locationFromLine(ln)
		}
	}
	return title, ""
}

func looksLikeLocation(s string) bool {
	low := strings.ToLower(s)
	if strings.Contains(low, "remote") || strings.Contains(low, "hybrid") ||
		strings.Contains(low, "on-site") || strings.Contains(low, "onsite") {
		return true
	}
	return strings.Contains(s, ",") && len(s) <= 60
}

// locationFromLine trims list metadata that rendered boards glue onto the
// location line ("Remote • Full time" keeps only "Remote").
func locationFromLine(s string) string {
	for _, cut := range []string{"•", "·", "|"} {
		if i := strings.Index(s, cut); i >= 0 {
			s = s[:i]
		}
	}
	return util.CleanText(s)
}

// blockHint looks through the enclosing block's lines for one that starts
// with a work-mode word. Coarser than titleAndHint on purpose: sibling
// text carries team and tag noise, so only a leading remote/hybrid is
// trusted.
func blockHint(block string) string {
	for _, ln := range strings.Split(block, "\n") {
		ln = util.CleanText(ln)
		low := strings.ToLower(ln)
		if strings.HasPrefix(low, "remote") || strings.HasPrefix(low, "hybrid") {
			return locationFromLine(ln)
		}
	}
	return ""
}

func isTimeout(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "timeout")
}
