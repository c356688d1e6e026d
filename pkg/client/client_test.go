package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/plan", r.URL.Path)
		json.NewEncoder(w).Encode(PlanEnvelope{
			Data:       &Plan{BestBatnaID: "2", BottomLineBuffer: 3},
			Completion: Completion{Strategy: true, Anchor: true},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	env, err := c.GetPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", env.Data.BestBatnaID)
	assert.True(t, env.Completion.Strategy)
}

func TestCreateIssueSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/plan/issues", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in IssueCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "彩礼金额", in.Name)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Issue{ID: "id-1", Name: in.Name})
	}))
	defer srv.Close()

	c := New(srv.URL)
	issue, err := c.CreateIssue(context.Background(), IssueCreate{Name: "彩礼金额", Importance: 10})
	require.NoError(t, err)
	assert.Equal(t, "id-1", issue.ID)
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "PLAN_001",
			"message": "issue missing not found",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.UpdateIssue(context.Background(), "missing", IssueUpdate{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PLAN_001", apiErr.Code)
	assert.True(t, apiErr.IsNotFound())
	assert.Contains(t, apiErr.Error(), "HTTP 404")
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.SetStep(context.Background(), 3)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP_502", apiErr.Code)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestGetReportHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/report", r.URL.Path)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html>报告</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	html, err := c.GetReportHTML(context.Background())
	require.NoError(t, err)
	assert.Contains(t, html, "报告")
}

func TestExportReportFormats(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		json.NewEncoder(w).Encode(ExportResult{Filename: "negotiation-report-2026-08-30.png", Format: "png"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	result, err := c.ExportReport(context.Background(), "png")
	require.NoError(t, err)
	assert.Contains(t, gotBody, `"png"`)
	assert.Equal(t, "negotiation-report-2026-08-30.png", result.Filename)

	_, err = c.ExportReport(context.Background(), "")
	require.NoError(t, err)
}

func TestDeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.NoError(t, c.DeleteIssue(context.Background(), "id-1"))
}
