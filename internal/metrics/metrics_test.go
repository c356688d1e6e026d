package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAppearInExposition(t *testing.T) {
	m := New()

	m.Mutation("add_issue")
	m.Mutation("add_issue")
	m.PersistFailure()
	m.Export("pdf", "ok")
	m.ObserveHTTP("GET", "/api/v1/plan", "200", 0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `negoprep_store_mutations_total{op="add_issue"} 2`)
	assert.Contains(t, body, "negoprep_snapshot_persist_failures_total 1")
	assert.Contains(t, body, `negoprep_report_exports_total{format="pdf",result="ok"} 1`)
	assert.Contains(t, body, "negoprep_http_request_duration_seconds_count")
}

func TestIsolatedRegistries(t *testing.T) {
	a := New()
	b := New()
	a.Mutation("reset_data")

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.NotContains(t, rec.Body.String(), "reset_data")
}
