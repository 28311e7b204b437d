package experiments

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RunResult records one independent run of one cell.
type RunResult struct {
	Problem        string  `json:"problem"`
	Objectives     int     `json:"objectives"`
	Run            int     `json:"run"`
	Seed           uint64  `json:"seed"`
	IGD            float64 `json:"igd"`
	FrontSize      int     `json:"frontSize"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// CellSummary aggregates the IGD statistics of all runs of one
// problem/objective combination.
type CellSummary struct {
	Problem         string  `json:"problem"`
	Objectives      int     `json:"objectives"`
	Generations     int     `json:"generations"`
	PopulationSize  int     `json:"populationSize"`
	ReferencePoints int     `json:"referencePoints"`
	Runs            int     `json:"runs"`
	BestIGD         float64 `json:"bestIGD"`
	MedianIGD       float64 `json:"medianIGD"`
	WorstIGD        float64 `json:"worstIGD"`
}

// Results collects everything an experiment batch produced.
type Results struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt"`
	Config     Config        `json:"config"`
	Cells      []CellSummary `json:"cells"`
	Runs       []RunResult   `json:"runs"`
}

// Save writes the results as indented JSON under dir, named by the
// experiment ID, and returns the file path.
func (r *Results) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("experiments_%s.json", r.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}
	return path, nil
}

// SummaryTable renders the per-cell IGD statistics as a text table, in the
// best/median/worst layout the NSGA-III paper reports.
func (r *Results) SummaryTable() string {
	t := table.NewWriter()
	t.SetTitle("NSGA-III IGD summary")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Problem", "M", "Gens", "Pop", "Best", "Median", "Worst"})
	for _, c := range r.Cells {
		t.AppendRow(table.Row{
			c.Problem,
			c.Objectives,
			c.Generations,
			c.PopulationSize,
			fmt.Sprintf("%.3e", c.BestIGD),
			fmt.Sprintf("%.3e", c.MedianIGD),
			fmt.Sprintf("%.3e", c.WorstIGD),
		})
	}
	return t.Render()
}
