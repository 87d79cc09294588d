package util

import (
	"net/url"
	"sort"
	"strings"
)

// CanonicalizeURL normalizes a job URL for identity checks: lowercased
// scheme and host, fragment dropped, tracking params removed, remaining
// query deterministically ordered.
func CanonicalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" ||
			lk == "mc_cid" || lk == "mc_eid" ||
			lk == "mkt_tok" ||
			lk == "gh_src" || lk == "lever-source" {
			q.Del(k)
		}
	}

	// deterministic query
	for k := range q {
		vals := q[k]
		sort.Strings(vals)
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ResolveHref resolves an anchor href against the page URL. Fragment-only
// and non-navigational hrefs (javascript:, mailto:, tel:) resolve to nothing.
func ResolveHref(base *url.URL, href string) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil, false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	switch strings.ToLower(ref.Scheme) {
	case "", "http", "https":
	default:
		return nil, false
	}
	abs := base.ResolveReference(ref)
	if abs.Host == "" {
		return nil, false
	}
	abs.Fragment = ""
	return abs, true
}

// SameOrigin reports whether two URLs share scheme, host, and port.
func SameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}
