package report

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRecordsStagesAndSummary(t *testing.T) {
	r := New("generate", "TestDocuments/large-test-50k.md")

	h := r.BeginStage("assemble")
	r.EndStage(h, "ok", map[string]float64{"sections_total": 12}, nil)

	h = r.BeginStage("write_output")
	r.EndStage(h, "", nil, errors.New("disk full"))

	path := filepath.Join(t.TempDir(), "generation_report.json")
	require.NoError(t, r.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Stages, 2)

	assert.Equal(t, "assemble", loaded.Stages[0].Name)
	assert.Equal(t, "ok", loaded.Stages[0].Status)
	assert.Equal(t, float64(12), loaded.Stages[0].Counters["sections_total"])

	assert.Equal(t, "write_output", loaded.Stages[1].Name)
	assert.Equal(t, "error", loaded.Stages[1].Status)
	assert.Equal(t, "disk full", loaded.Stages[1].Error)

	assert.Equal(t, 2, loaded.Summary.StageCount)
	assert.Equal(t, 1, loaded.Summary.FailedStages)
}

func TestEndStageWithEmptyHandleIsIgnored(t *testing.T) {
	r := New("generate", "out.md")
	r.EndStage(StageHandle{}, "ok", nil, nil)
	assert.Empty(t, r.Stages)
}

func TestEmptyCountersAreOmitted(t *testing.T) {
	r := New("generate", "out.md")
	h := r.BeginStage("assemble")
	r.EndStage(h, "ok", map[string]float64{"": 1}, nil)
	require.Len(t, r.Stages, 1)
	assert.Nil(t, r.Stages[0].Counters)
}
