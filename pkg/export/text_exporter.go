package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qc20/interview-transcriber/pkg/models"
	"github.com/qc20/interview-transcriber/pkg/utils"
)

// TextExporter renders the turn list as a plain-text interview transcript.
type TextExporter struct {
	OutputFolder string
	// SpeakerNames maps segmenter labels onto display roles. Unmapped labels
	// are printed as-is.
	SpeakerNames map[string]string
}

// NewTextExporter creates a new transcript exporter.
func NewTextExporter(outputFolder string, speakerNames map[string]string) *TextExporter {
	return &TextExporter{
		OutputFolder: outputFolder,
		SpeakerNames: speakerNames,
	}
}

func (e *TextExporter) speakerName(label string) string {
	if name, ok := e.SpeakerNames[label]; ok {
		return name
	}
	return label
}

// renderSegment returns one segment's display text: the unclear marker for
// unclear segments, with the pause marker prepended when the segment follows
// a detected pause.
func renderSegment(seg models.AnnotatedSegment) string {
	text := seg.RenderText()
	if seg.IsPauseMarker {
		return models.PauseMarker + " " + text
	}
	return text
}

// GenerateTranscript builds the full transcript text: a header with run
// metadata, then one line per turn in the
// "Turn NN [MM:SS - MM:SS] SPEAKER: text" layout.
func (e *TextExporter) GenerateTranscript(turns []models.Turn, report *models.Report, language string) string {
	var b strings.Builder

	b.WriteString("INTERVIEW TRANSCRIPT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(fmt.Sprintf("Date: %s\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Duration: %s\n", utils.FormatDuration(report.TotalDuration)))
	if language != "" {
		b.WriteString(fmt.Sprintf("Language: %s\n", language))
	}
	b.WriteString(fmt.Sprintf("Audio Quality: %s\n", report.AudioQuality))
	b.WriteString(fmt.Sprintf("Average Confidence: %.3f (higher is better)\n", report.MeanConfidence))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, turn := range turns {
		texts := make([]string, 0, len(turn.Segments))
		for _, seg := range turn.Segments {
			texts = append(texts, renderSegment(seg))
		}
		b.WriteString(fmt.Sprintf("Turn %2d [%s - %s] %s: %s\n",
			i+1,
			utils.FormatTimestamp(turn.Start),
			utils.FormatTimestamp(turn.End),
			e.speakerName(turn.Speaker),
			strings.Join(texts, " ")))
	}

	return b.String()
}

// ExportTranscript writes the transcript next to the other outputs, named
// after the source file.
func (e *TextExporter) ExportTranscript(turns []models.Turn, report *models.Report, language, filename string) (string, error) {
	if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := filepath.Base(filename)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outputFile := filepath.Join(e.OutputFolder, fmt.Sprintf("%s_transcript.txt", baseName))

	content := e.GenerateTranscript(turns, report, language)

	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript file: %w", err)
	}

	utils.Info("exported transcript: %s", outputFile)
	return outputFile, nil
}
