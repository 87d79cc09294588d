package domain

// SourceType is the detected ATS platform family behind a careers URL.
// The set is closed; adding a vendor means adding a constant here and a
// classifier pattern ahead of the generic fallback.
type SourceType string

const (
	SourceGreenhouse SourceType = "greenhouse"
	SourceLever      SourceType = "lever"
	SourceBreezy     SourceType = "breezy"
	SourceRecruitee  SourceType = "recruitee"
	SourceAshby      SourceType = "ashby"
	SourceWorkable   SourceType = "workable"
	SourceRippling   SourceType = "rippling"
	SourceGeneric    SourceType = "generic"
)

const (
	// StatusOpen is the only posting status this engine emits; closed
	// roles simply disappear from the next run's snapshot.
	StatusOpen = "open"

	// LocationNotListed is the sentinel for boards that expose no
	// location. Never the empty string.
	LocationNotListed = "Not listed"
)

// Job is one posting extracted from a company's careers page. Raw
// records (scrape output) and clean records (build output) share this
// shape; the build pass rewrites Title and Location only.
type Job struct {
	CompanyName string     `json:"company_name"`
	CareersURL  string     `json:"company_careers_url"`
	Title       string     `json:"job_title"`
	Location    string     `json:"job_location"`
	URL         string     `json:"job_url"`
	SourceType  SourceType `json:"source_type"`
	SourceJobID string     `json:"source_job_id"`
	JobKey      string     `json:"job_key"`
	Status      string     `json:"status"`
	LastSeenUTC string     `json:"last_seen_utc"`
}

// Meta describes the most recent completed build.
type Meta struct {
	LastUpdatedUTC string `json:"last_updated_utc"`
	RawCount       int    `json:"raw_count"`
	CleanCount     int    `json:"clean_count"`
}
