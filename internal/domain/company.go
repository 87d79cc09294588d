package domain

type Company struct {
	Name       string `json:"company_name"`
	CareersURL string `json:"company_careers_url"`
}

// Summary is the published per-company roll-up: every roster company
// appears exactly once, zero-counted when nothing survived the build.
type Summary struct {
	CompanyName string `json:"company_name"`
	CareersURL  string `json:"company_careers_url"`
	OpenRoles   int    `json:"open_roles"`
}
