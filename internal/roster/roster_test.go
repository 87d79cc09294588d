package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openroles-engine/internal/domain"
)

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		"company_name,careers_url",
		"Acme,https://acme.com/careers",
		" Globex , https://boards.greenhouse.io/globex ",
		",https://no-name.example.com",
		"Acme,https://acme.com/careers-duplicate",
		"Initech,https://jobs.lever.co/initech",
	}, "\n")

	companies, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []domain.Company{
		{Name: "Acme", CareersURL: "https://acme.com/careers"},
		{Name: "Globex", CareersURL: "https://boards.greenhouse.io/globex"},
		{Name: "Initech", CareersURL: "https://jobs.lever.co/initech"},
	}, companies)
}

func TestParseHeaderOrderAndBOM(t *testing.T) {
	in := "\ufeffcareers_url,company_name\nhttps://acme.com/careers,Acme\n"

	companies, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, "https://acme.com/careers", companies[0].CareersURL)
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("name,url\nAcme,https://acme.com\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company_name")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	err := os.WriteFile(path, []byte("company_name,careers_url\nAcme,https://acme.com/careers\n"), 0o644)
	require.NoError(t, err)

	companies, err := Load(path)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
