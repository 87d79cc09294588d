package greenhouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/scrape/source"
	"openroles-engine/internal/scrape/util"
)

const defaultAPIBase = "https://boards-api.greenhouse.io"

// Adapter reads hosted Greenhouse boards through the public board API
// instead of scraping the rendered board page.
type Adapter struct {
	hc      *http.Client
	apiBase string
}

func New(hc *http.Client) *Adapter {
	return &Adapter{hc: hc, apiBase: defaultAPIBase}
}

func (a *Adapter) Type() domain.SourceType { return domain.SourceGreenhouse }

type boardJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

type boardResponse struct {
	Jobs []boardJob `json:"jobs"`
}

func (a *Adapter) ListJobs(ctx context.Context, co domain.Company) ([]domain.Job, error) {
	u, err := source.ParseCareersURL(co.CareersURL)
	if err != nil {
		return nil, &source.ParseError{URL: co.CareersURL, Err: err}
	}
	slug := boardSlug(u)
	if slug == "" {
		return nil, &source.ParseError{URL: co.CareersURL, Err: errors.New("no board token in careers url")}
	}

	apiURL := fmt.Sprintf("%s/v1/boards/%s/jobs", a.apiBase, slug)
	res, err := source.Get(ctx, a.hc, apiURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var payload boardResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, &source.ParseError{URL: apiURL, Err: err}
	}

	seen := map[string]bool{}
	out := make([]domain.Job, 0, len(payload.Jobs))
	for _, j := range payload.Jobs {
		jobURL := strings.TrimSpace(j.AbsoluteURL)
		if jobURL == "" {
			continue
		}
		canon := util.CanonicalizeURL(jobURL)
		if seen[canon] {
			continue
		}
		seen[canon] = true

		var sourceID string
		if j.ID > 0 {
			sourceID = strconv.FormatInt(j.ID, 10)
		}
		loc := util.CleanText(j.Location.Name)
		if loc == "" {
			loc = domain.LocationNotListed
		}
		out = append(out, domain.Job{
			CompanyName: co.Name,
			CareersURL:  co.CareersURL,
			Title:       util.CleanText(j.Title),
			Location:    loc,
			URL:         jobURL,
			SourceType:  domain.SourceGreenhouse,
			SourceJobID: sourceID,
		})
	}
	return out, nil
}

// boardSlug extracts the board token, the last non-empty path segment of
// boards.greenhouse.io/<token> or job-boards.greenhouse.io/<token>.
func boardSlug(u *url.URL) string {
	segs := strings.Split(u.Path, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segs[i]); s != "" {
			return s
		}
	}
	return ""
}
