package e2e_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/contrast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	homePath   string
)

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "sitescore-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "sitescore")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/sitescore")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	// History and cache files stay inside the test sandbox.
	homePath = filepath.Join(dir, "home")
	if err := os.MkdirAll(homePath, 0755); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.FileServer(http.Dir("../../testdata/site")))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+homePath)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Audit Tests ---

func TestE2E_Audit(t *testing.T) {
	srv := newSiteServer(t)

	out, code := run(t, "audit", srv.URL)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "sitescore")
	assert.Contains(t, out, "100")
}

func TestE2E_AuditJSON(t *testing.T) {
	srv := newSiteServer(t)

	out, code := run(t, "audit", srv.URL, "--json")
	assert.Equal(t, 0, code)

	var result domain.AuditResult
	err := json.Unmarshal([]byte(out), &result)
	require.NoError(t, err)
	assert.True(t, result.OverallScore > 0, "overall should be positive")
	assert.True(t, result.OverallScore <= 100, "overall should not exceed 100")
}

func TestE2E_AuditCI(t *testing.T) {
	srv := newSiteServer(t)

	_, code := run(t, "audit", srv.URL, "--ci", "--min", "999")
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_AuditOrdering(t *testing.T) {
	srv := newSiteServer(t)

	cleanOut, _ := run(t, "audit", srv.URL, "--json")
	messyOut, _ := run(t, "audit", srv.URL+"/messy.html", "--json")

	var clean, messy domain.AuditResult
	require.NoError(t, json.Unmarshal([]byte(cleanOut), &clean))
	require.NoError(t, json.Unmarshal([]byte(messyOut), &messy))

	assert.Greater(t, clean.OverallScore, messy.OverallScore, "clean > messy")
	assert.NotEmpty(t, messy.Issues)
}

func TestE2E_AuditHistory(t *testing.T) {
	srv := newSiteServer(t)

	_, code := run(t, "audit", srv.URL)
	require.Equal(t, 0, code)

	out, code := run(t, "audit", srv.URL, "--history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Audit History")
}

// --- Contrast Tests ---

func TestE2E_Contrast(t *testing.T) {
	srv := newSiteServer(t)

	out, code := run(t, "contrast", srv.URL)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Light mode")
	assert.Contains(t, out, "Dark mode")
	assert.Contains(t, out, "excellent")
}

func TestE2E_ContrastJSON(t *testing.T) {
	srv := newSiteServer(t)

	out, code := run(t, "contrast", srv.URL, "--json")
	assert.Equal(t, 0, code)

	var report contrast.Report
	err := json.Unmarshal([]byte(out), &report)
	require.NoError(t, err)
	assert.Equal(t, 2, report.LightMode.TotalPairs, "index page styles two elements")
	assert.GreaterOrEqual(t, report.DarkMode.TotalPairs, 6)
}

// --- Variables Tests ---

func TestE2E_Vars(t *testing.T) {
	srv := newSiteServer(t)

	out, code := run(t, "vars", srv.URL)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--surface")
	// brand-blue lives only in the linked stylesheet.
	assert.Contains(t, out, "brand-blue")
}

// --- Offline Tests ---

func TestE2E_Suggest(t *testing.T) {
	out, code := run(t, "suggest", "#777777", "#ffffff")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "darken-fg")
}

func TestE2E_Harmony(t *testing.T) {
	out, code := run(t, "harmony", "#3b82f6")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Color Harmony")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "sitescore")
}
