package board

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openroles-engine/internal/domain"
	"openroles-engine/internal/scrape/source"
)

func serveHTML(t *testing.T, path, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	}))
}

func TestLeverListJobs(t *testing.T) {
	const page = `<html><body>
	<div class="postings-group">
	  <a class="posting-title" href="/acme/f52cb33e-1111-4f7d-8a0e-0a0a0a0a0a0a">
	    <h5>Senior Backend Engineer</h5>
	    <div class="posting-categories"><span class="sort-by-location">Remote - Europe</span></div>
	  </a>
	  <a class="posting-apply" href="/acme/f52cb33e-1111-4f7d-8a0e-0a0a0a0a0a0a/apply"><h5>Senior Backend Engineer</h5></a>
	  <a class="posting-title" href="/acme/9a8b7c6d">
	    <h5>Platform Engineer</h5>
	    <div class="posting-categories"><span class="sort-by-location">Berlin, Germany</span></div>
	  </a>
	  <a href="/acme/00ff1122"><h5>Apply</h5></a>
	  <a href="/other-org/deadbeef"><h5>Wrong Org Role</h5></a>
	  <a href="/acme">All jobs</a>
	  <a href="https://example.org/acme/f00dfeed"><h5>Cross Origin Role</h5></a>
	  <a href="#top">Back to top</a>
	</div>
	</body></html>`

	srv := serveHTML(t, "/acme", page)
	defer srv.Close()

	a := Lever(srv.Client())
	jobs, err := a.ListJobs(context.Background(), domain.Company{
		Name:       "Acme",
		CareersURL: srv.URL + "/acme",
	})
	require.NoError(t, err)

	// posting-shaped hrefs with junk text ("Apply"), a foreign org, or a
	// foreign origin are all dropped regardless of what the anchor says
	require.Len(t, jobs, 2)

	assert.Equal(t, "Senior Backend Engineer", jobs[0].Title)
	assert.Equal(t, "Remote - Europe", jobs[0].Location)
	assert.Equal(t, "f52cb33e-1111-4f7d-8a0e-0a0a0a0a0a0a", jobs[0].SourceJobID)
	assert.Equal(t, domain.SourceLever, jobs[0].SourceType)
	assert.NotContains(t, jobs[0].URL, "/apply")

	assert.Equal(t, "Platform Engineer", jobs[1].Title)
	assert.Equal(t, "9a8b7c6d", jobs[1].SourceJobID)
}

func TestBreezyListJobs(t *testing.T) {
	const page = `<html><body>
	<ul class="positions">
	  <li class="position">
	    <a href="/p/abc123-senior-engineer">
	      <h2>Senior Engineer</h2>
	      <ul class="meta"><li class="location"><span>Lisbon, Portugal</span></li></ul>
	    </a>
	  </li>
	  <li class="position">
	    <a href="/p/x9y8-product-designer"><h2>Product Designer</h2></a>
	    <span class="location">Berlin</span>
	  </li>
	  <li><a href="/p/abc123-senior-engineer/apply"><h2>Senior Engineer</h2></a></li>
	  <li><a href="/positions">See all positions</a></li>
	</ul>
	</body></html>`

	srv := serveHTML(t, "/", page)
	defer srv.Close()

	a := Breezy(srv.Client())
	jobs, err := a.ListJobs(context.Background(), domain.Company{
		Name:       "Acme",
		CareersURL: srv.URL + "/",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Senior Engineer", jobs[0].Title)
	assert.Equal(t, "Lisbon, Portugal", jobs[0].Location)
	assert.Equal(t, "", jobs[0].SourceJobID)

	// location sits beside the anchor here, not inside it
	assert.Equal(t, "Product Designer", jobs[1].Title)
	assert.Equal(t, "Berlin", jobs[1].Location)
}

func TestRecruiteeListJobs(t *testing.T) {
	const page = `<html><body>
	<div class="job"><a href="/o/frontend-developer">Frontend Developer</a>
	  <span class="job-location">Amsterdam, Netherlands</span></div>
	<div class="job"><a href="/o/data-engineer">Data Engineer</a></div>
	<a href="/o/frontend-developer?utm_source=widget">Frontend Developer</a>
	<a href="/about">About us</a>
	</body></html>`

	srv := serveHTML(t, "/", page)
	defer srv.Close()

	a := Recruitee(srv.Client())
	jobs, err := a.ListJobs(context.Background(), domain.Company{
		Name:       "Acme",
		CareersURL: srv.URL + "/",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Frontend Developer", jobs[0].Title)
	assert.Equal(t, "Amsterdam, Netherlands", jobs[0].Location)
	assert.Equal(t, "", jobs[0].SourceJobID)
	assert.Equal(t, "Data Engineer", jobs[1].Title)
	assert.Equal(t, domain.LocationNotListed, jobs[1].Location)
}

func TestListJobsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	a := Breezy(srv.Client())
	_, err := a.ListJobs(context.Background(), domain.Company{Name: "Acme", CareersURL: srv.URL})
	var fe *source.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusForbidden, fe.Status)
}

func TestPostingPredicates(t *testing.T) {
	mustParse := func(s string) *url.URL {
		u, err := url.Parse(s)
		require.NoError(t, err)
		return u
	}
	page := mustParse("https://jobs.lever.co/acme")

	t.Run("lever", func(t *testing.T) {
		id, jobURL, ok := leverPosting(page, mustParse("https://jobs.lever.co/acme/f52c/apply"))
		require.True(t, ok)
		assert.Equal(t, "f52c", id)
		assert.Equal(t, "/acme/f52c", jobURL.Path)

		_, _, ok = leverPosting(page, mustParse("https://jobs.lever.co/acme"))
		assert.False(t, ok)
		_, _, ok = leverPosting(page, mustParse("https://jobs.lever.co/elsewhere/f52c"))
		assert.False(t, ok)
		_, _, ok = leverPosting(page, mustParse("https://jobs.lever.co/acme/f52c/refer"))
		assert.False(t, ok)
	})

	t.Run("breezy", func(t *testing.T) {
		id, jobURL, ok := breezyPosting(nil, mustParse("https://acme.breezy.hr/p/abc123-engineer/apply"))
		require.True(t, ok)
		assert.Equal(t, "", id)
		assert.Equal(t, "/p/abc123-engineer", jobURL.Path)

		_, _, ok = breezyPosting(nil, mustParse("https://acme.breezy.hr/positions"))
		assert.False(t, ok)
	})

	t.Run("recruitee", func(t *testing.T) {
		id, jobURL, ok := recruiteePosting(nil, mustParse("https://acme.recruitee.com/o/backend-dev/c/new"))
		require.True(t, ok)
		assert.Equal(t, "", id)
		assert.Equal(t, "/o/backend-dev", jobURL.Path)

		_, _, ok = recruiteePosting(nil, mustParse("https://acme.recruitee.com/career"))
		assert.False(t, ok)
	})
}
