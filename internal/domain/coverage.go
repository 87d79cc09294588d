package domain

// CoverageStatus summarizes one company's scrape outcome.
type CoverageStatus string

const (
	CoverageOK          CoverageStatus = "ok"
	CoverageEmpty       CoverageStatus = "empty"
	CoverageFailed      CoverageStatus = "failed"
	CoverageUnsupported CoverageStatus = "unsupported"
)

// Coverage is the per-company health record of a scrape run, created
// exactly once per roster company and never mutated afterward.
type Coverage struct {
	CompanyName  string         `json:"company_name"`
	CareersURL   string         `json:"company_careers_url"`
	SourceType   SourceType     `json:"source_type"`
	Status       CoverageStatus `json:"status"`
	OpenRolesRaw int            `json:"open_roles_raw"`
	Error        string         `json:"error"`
	LastChecked  string         `json:"last_checked_utc"`
}
