package source

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"openroles-engine/internal/domain"
)

// ParseCareersURL validates a roster careers URL. Companies whose URL fails
// here are recorded as unsupported rather than attempted.
func ParseCareersURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty careers url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}

// Classify maps a careers URL to the provider family that serves it.
// Matching is by host substring, so region-prefixed hosts
// (job-boards.eu.greenhouse.io, jobs.eu.lever.co) bind the same way.
func Classify(u *url.URL) domain.SourceType {
	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return domain.SourceGreenhouse
	case strings.Contains(host, "lever.co"):
		return domain.SourceLever
	case strings.Contains(host, "breezy.hr"):
		return domain.SourceBreezy
	case strings.Contains(host, "recruitee.com"):
		return domain.SourceRecruitee
	case strings.Contains(host, "ashbyhq.com"):
		return domain.SourceAshby
	case strings.Contains(host, "workable.com"):
		return domain.SourceWorkable
	case strings.Contains(host, "rippling.com"):
		return domain.SourceRippling
	}
	return domain.SourceGeneric
}
