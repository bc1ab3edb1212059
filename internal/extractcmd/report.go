package extractcmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sce-tools/cardex/internal/cards"
)

// RunReport summarizes one extraction run.
type RunReport struct {
	Config  ReportConfig `yaml:"config"`
	Summary Summary      `yaml:"summary"`
	Cards   []ReportCard `yaml:"cards"`
}

// ReportConfig records the inputs the run was started with.
type ReportConfig struct {
	Data      string   `yaml:"data"`
	Output    string   `yaml:"output"`
	Filters   []string `yaml:"filters,omitempty"`
	Overwrite bool     `yaml:"overwrite"`
	Timestamp string   `yaml:"timestamp"`
}

// Summary holds the run totals.
type Summary struct {
	Discovered    int      `yaml:"discovered"`
	Selected      int      `yaml:"selected"`
	ImagesWritten int      `yaml:"imageswritten"`
	FacesSkipped  int      `yaml:"facesskipped"`
	Paths         []string `yaml:"paths"`
}

// ReportCard is one selected card in the report.
type ReportCard struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

func buildReport(opts extractOptions, all, selected []cards.Card, written, skipped int) RunReport {
	report := RunReport{
		Config: ReportConfig{
			Data:      opts.DataPath,
			Output:    opts.OutputDir,
			Filters:   opts.Filters,
			Overwrite: opts.Overwrite,
			Timestamp: time.Now().Format("2006-01-02_15-04-05"),
		},
		Summary: Summary{
			Discovered:    len(all),
			Selected:      len(selected),
			ImagesWritten: written,
			FacesSkipped:  skipped,
			Paths:         distinctPaths(all),
		},
		Cards: make([]ReportCard, 0, len(selected)),
	}
	for _, card := range selected {
		report.Cards = append(report.Cards, ReportCard{
			ID:   card.ID,
			Name: card.Name,
			Path: card.PathString(),
		})
	}
	return report
}

func writeReport(path string, report RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
