package normalize

import (
	"regexp"
	"strings"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/scrape/util"
)

// Scraped titles arrive in every state of disrepair: body copy glued to the
// heading, compensation tails, department tags, template placeholders from
// broken embeds. The chain below runs in a fixed order; the order matters
// on edge-case titles, so steps are never merged or reordered even where
// they look redundant.

// navigation chrome, not postings
var titleDenylist = map[string]bool{
	"careers": true, "jobs": true, "openings": true,
	"open positions": true, "open roles": true, "all jobs": true,
	"view all jobs": true, "apply": true, "apply now": true,
	"log in": true, "login": true, "sign in": true, "sign up": true,
	"privacy policy": true, "cookie policy": true, "terms of service": true,
}

// URL fragments that never identify a posting
var urlDenyFragments = []string{
	"/privacy", "/terms", "/login", "/signin", "/sign-in",
	"/signup", "/sign-up", "/cookie", "/legal/",
}

var placeholderRe = regexp.MustCompile(`%[A-Z0-9_]+%`)

var sectionHeaders = []string{
	"Responsibilities", "Description", "About the role",
	"Requirements", "Qualifications",
}

var departments = map[string]bool{
	"engineering": true, "marketing": true, "sales": true,
	"product": true, "operations": true, "finance": true,
	"people": true, "legal": true, "design": true, "support": true,
}

var connectives = map[string]bool{"of": true, "and": true, "&": true, "for": true}

var workModeRe = regexp.MustCompile(`(?i)\b(remote|hybrid|on[- ]?site)\b`)

var compNoiseRe = regexp.MustCompile(`(?i)[$€£]\s?\d|\boffers equity\b|\bfull[- ]time\b|\bpart[- ]time\b|\bcontract\b|\binternship\b`)

var geoParenRe = regexp.MustCompile(`\(([^)]*)\)\s*$`)

var separators = []string{" — ", " – ", " - ", " | "}

var dashVariants = []string{" — ", " – ", " - "}

// Normalize runs the ordered cleanup chain over one raw posting. ok=false
// rejects the record; callers keep the original untouched, never a
// half-transformed one.
func Normalize(raw domain.Job) (domain.Job, bool) {
	cleaned := util.CleanText(raw.Title)
	loc := util.CleanText(raw.Location)

	// 1. navigation chrome and non-job URLs
	if len(cleaned) < 3 || deniedTitle(cleaned) || deniedURL(raw.URL) {
		return domain.Job{}, false
	}
	// 2. template placeholders mean the embed never rendered
	if placeholderRe.MatchString(cleaned) {
		return domain.Job{}, false
	}

	// 3-4. newline cut, section-header cut, long-title separator cut
	title := CleanTitle(raw.Title)

	// 5. trailing department tag
	title = stripDeptSuffix(title)

	// 6. "forward deployed" is a team flavor, not a place
	if strings.Contains(strings.ToLower(loc), "forward deployed") {
		loc = domain.LocationNotListed
	}

	// 7. work mode reads from the title only
	mode := detectMode(title)

	// 8. bullet-glued list metadata
	if i := strings.IndexAny(title, "•·"); i >= 0 {
		title = util.CleanText(title[:i])
	}

	// 9. compensation, equity, and employment-type tails
	title = stripCompNoise(title)
	if len(title) > 45 {
		title = cutAtFirstSep(title)
	}

	// 10. geography hint from the tail
	var geo string
	title, geo, mode = extractGeoHint(title, mode)

	// 11. the cuts above can expose another department tag
	title = stripDeptSuffix(title)

	// 12. reconstruct the location
	loc = synthesizeLocation(loc, mode, geo)

	title = util.CleanText(title)
	if len(title) < 3 {
		return domain.Job{}, false
	}

	out := raw
	out.Title = title
	out.Location = loc
	return out, true
}

// CleanTitle runs the title-only head of the chain: cut at the first
// line break of the original text, then at the first section header that
// leaked in from body copy, then split an over-long title at its first
// separator. The generic scrape adapter runs anchor text through this
// before its sanity gates; Normalize applies it as steps 3 and 4.
func CleanTitle(text string) string {
	if i := strings.IndexAny(text, "\n\r"); i >= 0 {
		text = text[:i]
	}
	title := util.CleanText(text)
	title = cutAtFirstMarker(title, sectionHeaders)
	if len(title) > 70 {
		title = cutAtFirstSep(title)
	}
	return title
}

func deniedTitle(title string) bool {
	low := strings.ToLower(title)
	if strings.HasPrefix(low, "powered by") {
		return true
	}
	return titleDenylist[low]
}

func deniedURL(rawURL string) bool {
	low := strings.ToLower(rawURL)
	for _, frag := range urlDenyFragments {
		if strings.Contains(low, frag) {
			return true
		}
	}
	return false
}

func cutAtFirstMarker(title string, markers []string) string {
	best := -1
	for _, m := range markers {
		if i := strings.Index(title, m); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	if best < 0 {
		return title
	}
	return util.CleanText(title[:best])
}

// cutAtFirstSep splits once at the earliest separator token. Index zero
// never cuts: a title cannot start with its own subtitle.
func cutAtFirstSep(title string) string {
	best := -1
	for _, s := range separators {
		if i := strings.Index(title, s); i > 0 && (best < 0 || i < best) {
			best = i
		}
	}
	if best < 0 {
		return title
	}
	return util.CleanText(title[:best])
}

// stripDeptSuffix removes a trailing department tag, first as a "- Word"
// suffix, then as a bare trailing word. The bare form stays put after a
// connective ("Head of Engineering") or when stripping would leave a
// one-word title.
func stripDeptSuffix(title string) string {
	for _, d := range dashVariants {
		if i := strings.LastIndex(title, d); i > 0 {
			tail := util.CleanText(title[i+len(d):])
			if departments[strings.ToLower(tail)] {
				return util.CleanText(title[:i])
			}
		}
	}
	fields := strings.Fields(title)
	if len(fields) >= 3 {
		last := strings.ToLower(strings.Trim(fields[len(fields)-1], ",.;:"))
		prev := fields[len(fields)-2]
		if departments[last] && !connectives[strings.ToLower(prev)] && !strings.HasSuffix(prev, ",") {
			return util.CleanText(strings.Join(fields[:len(fields)-1], " "))
		}
	}
	return title
}

func detectMode(title string) string {
	m := strings.ToLower(workModeRe.FindString(title))
	switch m {
	case "":
		return ""
	case "remote", "hybrid":
		return m
	default:
		return "onsite"
	}
}

// stripCompNoise cuts the title at the first compensation or
// employment-type marker. A marker at the very start is the title itself
// ("Contract Manager"), so it stays.
func stripCompNoise(title string) string {
	if idx := compNoiseRe.FindStringIndex(title); idx != nil && idx[0] > 0 {
		return util.CleanText(title[:idx[0]])
	}
	return title
}

// extractGeoHint pulls a trailing parenthesized fragment or a short
// "- Region" dash suffix off the title. A fragment that is only a
// work-mode word refines the mode instead of becoming geography.
func extractGeoHint(title, mode string) (string, string, string) {
	var hint string
	if m := geoParenRe.FindStringSubmatchIndex(title); m != nil && m[0] > 0 {
		hint = util.CleanText(title[m[2]:m[3]])
		title = util.CleanText(title[:m[0]])
	} else {
		for _, d := range dashVariants {
			i := strings.LastIndex(title, d)
			if i <= 0 {
				continue
			}
			tail := util.CleanText(title[i+len(d):])
			if regionish(tail) {
				hint = tail
				title = util.CleanText(title[:i])
			}
			break
		}
	}
	if hint != "" {
		if m := detectMode(hint); m != "" && util.CleanText(workModeRe.ReplaceAllString(hint, "")) == "" {
			if mode == "" {
				mode = m
			}
			hint = ""
		}
	}
	return title, hint, mode
}

// regionish accepts tails that plausibly name a place: a single word, a
// comma-separated pair, or a work-mode word. Multi-word team names stay in
// the title.
func regionish(tail string) bool {
	if tail == "" || len(tail) > 30 {
		return false
	}
	if workModeRe.MatchString(tail) {
		return true
	}
	if strings.Contains(tail, ",") {
		return true
	}
	return len(strings.Fields(tail)) == 1
}

func synthesizeLocation(loc, mode, geo string) string {
	missing := loc == "" || strings.EqualFold(loc, domain.LocationNotListed)
	if missing {
		switch {
		case mode == "remote" && geo != "":
			return "Remote — " + geo
		case mode == "remote":
			return "Remote"
		case mode == "hybrid" && geo != "":
			return "Hybrid — " + geo
		case mode == "hybrid":
			return "Hybrid"
		case geo != "":
			return geo
		default:
			return domain.LocationNotListed
		}
	}
	if mode == "remote" && !strings.Contains(strings.ToLower(loc), "remote") {
		return "Remote — " + loc
	}
	return loc
}
