package render

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"openroles-engine/internal/domain"
)

// Ashby boards live at jobs.ashbyhq.com/<org> and hydrate after network
// idle. Posting links are /<org>/<posting-uuid>; the location often sits
// in the card around the anchor rather than inside it.
func Ashby(open func() (Renderer, error)) *Adapter {
	return New(Profile{
		Type:      domain.SourceAshby,
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Settle:    500 * time.Millisecond,
		Posting:   ashbyPosting,
		BlockHint: true,
	}, open)
}

func ashbyPosting(page, link *url.URL) (string, *url.URL, bool) {
	org := firstSegment(page.Path)
	segs := pathSegments(link.Path)
	if org == "" || len(segs) < 2 || !strings.EqualFold(segs[0], org) {
		return "", nil, false
	}
	if _, err := uuid.Parse(segs[1]); err != nil {
		return "", nil, false
	}
	id := strings.ToLower(segs[1])
	jobURL := *link
	jobURL.Path = "/" + segs[0] + "/" + id
	return id, &jobURL, true
}

// Workable boards live at apply.workable.com/<org>. The list builds slowly
// after domcontentloaded, so the settle delay does the waiting. Posting
// links carry a /j/<shortcode> segment.
func Workable(open func() (Renderer, error)) *Adapter {
	return New(Profile{
		Type:      domain.SourceWorkable,
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Settle:    1500 * time.Millisecond,
		Posting:   workablePosting,
	}, open)
}

func workablePosting(_, link *url.URL) (string, *url.URL, bool) {
	segs := pathSegments(link.Path)
	for i := 0; i+1 < len(segs); i++ {
		if strings.EqualFold(segs[i], "j") {
			id := segs[i+1]
			jobURL := *link
			jobURL.Path = "/" + strings.Join(segs[:i+2], "/")
			return id, &jobURL, true
		}
	}
	return "", nil, false
}

// Rippling boards live at ats.rippling.com/<org>/jobs. Posting links extend
// the board path with a requisition token that is only unique within the
// board, so postings carry no source id and take their identity from the
// posting URL.
func Rippling(open func() (Renderer, error)) *Adapter {
	return New(Profile{
		Type:      domain.SourceRippling,
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Settle:    time.Second,
		Posting:   ripplingPosting,
	}, open)
}

func ripplingPosting(_, link *url.URL) (string, *url.URL, bool) {
	segs := pathSegments(link.Path)
	for i := 1; i+1 < len(segs); i++ {
		if strings.EqualFold(segs[i], "jobs") {
			jobURL := *link
			jobURL.Path = "/" + strings.Join(segs[:i+2], "/")
			return "", &jobURL, true
		}
	}
	return "", nil, false
}

func pathSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func firstSegment(p string) string {
	if segs := pathSegments(p); len(segs) > 0 {
		return segs[0]
	}
	return ""
}
