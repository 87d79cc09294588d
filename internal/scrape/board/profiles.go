package board

import (
	"net/http"
	"net/url"
	"strings"

	"openroles-engine/internal/domain"
)

// Lever boards live at jobs.lever.co/<org>. Posting links are
// /<org>/<posting-id>; /apply variants collapse onto the posting itself.
func Lever(hc *http.Client) *Adapter {
	return New(Profile{
		Type:        domain.SourceLever,
		Posting:     leverPosting,
		TitleSel:    "h5",
		LocationSel: ".sort-by-location",
	}, hc)
}

func leverPosting(page, link *url.URL) (string, *url.URL, bool) {
	org := firstSegment(page.Path)
	if org == "" {
		return "", nil, false
	}
	segs := pathSegments(link.Path)
	if len(segs) == 3 && strings.EqualFold(segs[2], "apply") {
		segs = segs[:2]
	}
	if len(segs) != 2 || !strings.EqualFold(segs[0], org) {
		return "", nil, false
	}
	id := segs[1]
	if strings.EqualFold(id, "apply") {
		return "", nil, false
	}
	jobURL := *link
	jobURL.Path = "/" + segs[0] + "/" + id
	return id, &jobURL, true
}

// Breezy boards live at <org>.breezy.hr. Posting links start with /p/; the
// slug repeats across boards, so postings carry no source id and take their
// identity from the posting URL.
func Breezy(hc *http.Client) *Adapter {
	return New(Profile{
		Type:        domain.SourceBreezy,
		Posting:     breezyPosting,
		TitleSel:    "h2",
		LocationSel: ".location",
	}, hc)
}

func breezyPosting(_, link *url.URL) (string, *url.URL, bool) {
	segs := pathSegments(link.Path)
	if len(segs) < 2 || !strings.EqualFold(segs[0], "p") {
		return "", nil, false
	}
	jobURL := *link
	jobURL.Path = "/p/" + segs[1]
	return "", &jobURL, true
}

// Recruitee boards live at <org>.recruitee.com. Posting links start with /o/;
// the slug repeats across boards, so postings carry no source id and take
// their identity from the posting URL.
func Recruitee(hc *http.Client) *Adapter {
	return New(Profile{
		Type:        domain.SourceRecruitee,
		Posting:     recruiteePosting,
		LocationSel: "[class*='location']",
	}, hc)
}

func recruiteePosting(_, link *url.URL) (string, *url.URL, bool) {
	segs := pathSegments(link.Path)
	if len(segs) < 2 || !strings.EqualFold(segs[0], "o") {
		return "", nil, false
	}
	jobURL := *link
	jobURL.Path = "/o/" + segs[1]
	return "", &jobURL, true
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
