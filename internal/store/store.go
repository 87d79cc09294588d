// Package store persists run artifacts as JSON files under a data
// directory. Every artifact is a full-file overwrite: a temp file is
// written first and renamed into place so readers never see a partial
// document.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"openroles-engine/internal/domain"
)

const (
	rawJobsFile      = "raw_jobs.json"
	coverageFile     = "coverage.json"
	cleanJobsFile    = "clean_jobs.json"
	rejectedJobsFile = "rejected_jobs.json"
	summaryFile      = "company_summary.json"
	metaFile         = "meta.json"

	lockFile = ".openroles.lock"
)

// Store reads and writes artifacts in a single data directory.
type Store struct {
	dir string
}

// New ensures dir exists and returns a store rooted at it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store writes into.
func (s *Store) Dir() string { return s.dir }

// Lock takes an advisory lock on the data directory so two runs cannot
// interleave artifact writes. The returned release func must be called
// when the run is done.
func (s *Store) Lock() (func(), error) {
	fl := flock.New(filepath.Join(s.dir, lockFile))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("data dir %s is locked by another run", s.dir)
	}
	return func() { _ = fl.Unlock() }, nil
}

// SaveScrape overwrites the raw-job dataset and the coverage report.
func (s *Store) SaveScrape(jobs []domain.Job, coverage []domain.Coverage) error {
	if jobs == nil {
		jobs = []domain.Job{}
	}
	if coverage == nil {
		coverage = []domain.Coverage{}
	}

	var g errgroup.Group
	g.Go(func() error { return s.writeJSON(rawJobsFile, jobs) })
	g.Go(func() error { return s.writeJSON(coverageFile, coverage) })
	return g.Wait()
}

// SaveBuild overwrites the four build artifacts.
func (s *Store) SaveBuild(clean, rejected []domain.Job, summaries []domain.Summary, meta domain.Meta) error {
	if clean == nil {
		clean = []domain.Job{}
	}
	if rejected == nil {
		rejected = []domain.Job{}
	}
	if summaries == nil {
		summaries = []domain.Summary{}
	}

	var g errgroup.Group
	g.Go(func() error { return s.writeJSON(cleanJobsFile, clean) })
	g.Go(func() error { return s.writeJSON(rejectedJobsFile, rejected) })
	g.Go(func() error { return s.writeJSON(summaryFile, summaries) })
	g.Go(func() error { return s.writeJSON(metaFile, meta) })
	return g.Wait()
}

// LoadRawJobs reads the raw-job dataset written by a previous scrape.
func (s *Store) LoadRawJobs() ([]domain.Job, error) {
	var jobs []domain.Job
	if err := s.readJSON(rawJobsFile, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// LoadCoverage reads the coverage report written by a previous scrape.
func (s *Store) LoadCoverage() ([]domain.Coverage, error) {
	var cov []domain.Coverage
	if err := s.readJSON(coverageFile, &cov); err != nil {
		return nil, err
	}
	return cov, nil
}

// LoadMeta reads the run metadata written by a previous build.
func (s *Store) LoadMeta() (domain.Meta, error) {
	var meta domain.Meta
	if err := s.readJSON(metaFile, &meta); err != nil {
		return domain.Meta{}, err
	}
	return meta, nil
}

func (s *Store) writeJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	b = append(b, '\n')

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}

	log.Printf("[store] wrote %s bytes=%d", name, len(b))
	return nil
}

func (s *Store) readJSON(name string, v any) error {
	path := filepath.Join(s.dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
