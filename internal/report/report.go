package report

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// GenerationReport records what a single generation run did: per-stage
// timings and the counters each stage produced. It is written as JSON
// next to the output document so repeated benchmark runs can be
// compared.
type GenerationReport struct {
	Version     string        `json:"version"`
	Mode        string        `json:"mode"`
	GeneratedAt string        `json:"generated_at"`
	OutputPath  string        `json:"output_path"`
	Stages      []StageMetric `json:"stages"`
	Summary     Summary       `json:"summary"`
}

type StageMetric struct {
	Name       string             `json:"name"`
	Status     string             `json:"status"`
	StartedAt  string             `json:"started_at"`
	FinishedAt string             `json:"finished_at"`
	DurationMS int64              `json:"duration_ms"`
	Counters   map[string]float64 `json:"counters,omitempty"`
	Error      string             `json:"error,omitempty"`
}

type Summary struct {
	StageCount   int `json:"stage_count"`
	FailedStages int `json:"failed_stages"`
}

// StageHandle ties an EndStage call back to its BeginStage.
type StageHandle struct {
	name    string
	started time.Time
}

func New(mode, outputPath string) *GenerationReport {
	return &GenerationReport{
		Version:     "v1",
		Mode:        mode,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		OutputPath:  outputPath,
		Stages:      []StageMetric{},
	}
}

func (r *GenerationReport) BeginStage(name string) StageHandle {
	return StageHandle{name: strings.TrimSpace(name), started: time.Now().UTC()}
}

func (r *GenerationReport) EndStage(h StageHandle, status string, counters map[string]float64, err error) {
	if r == nil || h.name == "" {
		return
	}
	if strings.TrimSpace(status) == "" {
		status = "ok"
	}
	finished := time.Now().UTC()
	m := StageMetric{
		Name:       h.name,
		Status:     status,
		StartedAt:  h.started.Format(time.RFC3339Nano),
		FinishedAt: finished.Format(time.RFC3339Nano),
		DurationMS: finished.Sub(h.started).Milliseconds(),
		Counters:   cleanCounters(counters),
	}
	if err != nil {
		m.Error = err.Error()
		if m.Status == "ok" {
			m.Status = "error"
		}
	}
	r.Stages = append(r.Stages, m)
}

// Save recomputes the summary and writes the report as indented JSON.
func (r *GenerationReport) Save(path string) error {
	r.Summary = Summary{StageCount: len(r.Stages)}
	for _, s := range r.Stages {
		if s.Status != "ok" {
			r.Summary.FailedStages++
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Load(path string) (*GenerationReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r GenerationReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func cleanCounters(in map[string]float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
