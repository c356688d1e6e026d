package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupLocal(t *testing.T) {
	t.Helper()
	t.Setenv("NEGOPREP_STORAGE_FILE_DIR", t.TempDir())
	t.Setenv("NEGOPREP_EXPORT_OUTPUT_DIR", t.TempDir())
}

func TestPlanShowLocal(t *testing.T) {
	setupLocal(t)

	out, err := runCLI(t, "plan", "show")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Metadata struct {
				CurrentStep int `json:"currentStep"`
			} `json:"metadata"`
		} `json:"data"`
		Completion struct {
			Strategy bool `json:"strategy"`
		} `json:"completion"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Data.Metadata.CurrentStep)
	assert.True(t, resp.Completion.Strategy)
}

func TestExampleFlowLocal(t *testing.T) {
	setupLocal(t)

	out, err := runCLI(t, "plan", "example", "male")
	require.NoError(t, err)
	assert.Contains(t, out, "改为旅行婚礼")

	// State persists across invocations through the snapshot file.
	out, err = runCLI(t, "batna", "recalc")
	require.NoError(t, err)

	var result struct {
		Best struct {
			Name string `json:"name"`
		} `json:"best"`
		Floor  float64 `json:"floor"`
		Buffer float64 `json:"buffer"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "改为旅行婚礼", result.Best.Name)
	assert.InDelta(t, 3.0, result.Floor, 1e-9)
}

func TestIssueAddLocal(t *testing.T) {
	setupLocal(t)

	out, err := runCLI(t, "issue", "add", "--name", "彩礼金额", "--importance", "10", "--ideal", "15", "--unit", "万元")
	require.NoError(t, err)
	assert.Contains(t, out, "彩礼金额")

	_, err = runCLI(t, "issue", "add")
	require.Error(t, err, "--name is required")
}

func TestPlanStepValidation(t *testing.T) {
	setupLocal(t)

	_, err := runCLI(t, "plan", "step", "9")
	require.Error(t, err)

	_, err = runCLI(t, "plan", "step", "abc")
	require.Error(t, err)

	out, err := runCLI(t, "plan", "step", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"currentStep": 4`)
}

func TestStrategyValidation(t *testing.T) {
	setupLocal(t)

	_, err := runCLI(t, "strategy", "--approach", "aggressive")
	require.Error(t, err)

	out, err := runCLI(t, "strategy", "--approach", "competitive", "--concession", "step")
	require.NoError(t, err)
	assert.Contains(t, out, "competitive")
	assert.Contains(t, out, "step")
}

func TestRemoteMode(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"data":       map[string]any{"bestBatnaId": "2"},
			"completion": map[string]any{"goals": true},
		})
	}))
	defer srv.Close()

	out, err := runCLI(t, "--server", srv.URL, "plan", "show")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/plan", gotPath)
	assert.Contains(t, out, `"bestBatnaId": "2"`)
}

func TestReportExportFormatValidation(t *testing.T) {
	setupLocal(t)

	_, err := runCLI(t, "report", "export", "--format", "docx")
	require.Error(t, err)
}
