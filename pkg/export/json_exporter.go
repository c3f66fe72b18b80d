package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qc20/interview-transcriber/pkg/models"
	"github.com/qc20/interview-transcriber/pkg/utils"
)

// TranscriptDocument is the machine-readable export: the full turn list with
// all quality flags, plus the statistics report. Downstream renderers consume
// this instead of re-running the pipeline.
type TranscriptDocument struct {
	RunID       string         `json:"run_id"`
	GeneratedAt string         `json:"generated_at"`
	Language    string         `json:"language,omitempty"`
	Turns       []models.Turn  `json:"turns"`
	Report      *models.Report `json:"report"`
}

// JSONExporter writes the TranscriptDocument for a run.
type JSONExporter struct {
	OutputFolder string
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(outputFolder string) *JSONExporter {
	return &JSONExporter{OutputFolder: outputFolder}
}

// GenerateDocument assembles the export document.
func (e *JSONExporter) GenerateDocument(runID string, turns []models.Turn, report *models.Report, language string) TranscriptDocument {
	return TranscriptDocument{
		RunID:       runID,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Language:    language,
		Turns:       turns,
		Report:      report,
	}
}

// ExportJSON writes the document as indented JSON, named after the source file.
func (e *JSONExporter) ExportJSON(runID string, turns []models.Turn, report *models.Report, language, filename string) (string, error) {
	if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := filepath.Base(filename)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outputFile := filepath.Join(e.OutputFolder, fmt.Sprintf("%s_report.json", baseName))

	doc := e.GenerateDocument(runID, turns, report, language)

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	if err := os.WriteFile(outputFile, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	utils.Info("exported JSON report: %s", outputFile)
	return outputFile, nil
}
