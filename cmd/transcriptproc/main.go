package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/qc20/interview-transcriber/internal/ui"
	"github.com/qc20/interview-transcriber/internal/watcher"
	"github.com/qc20/interview-transcriber/pkg/export"
	"github.com/qc20/interview-transcriber/pkg/models"
	"github.com/qc20/interview-transcriber/pkg/pipeline"
	"github.com/qc20/interview-transcriber/pkg/recognizer"
	"github.com/qc20/interview-transcriber/pkg/utils"
)

var (
	inputDir   = flag.String("input", "./recognitions", "folder with recognition result files")
	outputDir  = flag.String("output", "./transcripts", "output folder")
	configFile = flag.String("config", "", "config file path")
	watchMode  = flag.Bool("watch", false, "watch the input folder for new result files")
	logLevel   = flag.String("log-level", "INFO", "log level (VERBOSE, INFO, WARN)")
	logFile    = flag.String("log-file", "", "log file path")
)

func main() {
	flag.Parse()

	if err := utils.InitLogger(*logLevel, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	printWelcome()

	config := loadConfig()

	proc := newProcessor(config)

	if config.WatchMode {
		runWatch(config, proc)
		return
	}

	files, err := filepath.Glob(filepath.Join(config.InputFolder, "*.json"))
	if err != nil {
		logrus.Fatalf("failed to scan input folder: %v", err)
	}
	sort.Strings(files)

	if len(files) == 0 {
		logrus.Info("no recognition result files found, exiting")
		return
	}

	fmt.Println("\nfound the following result files:")
	fmt.Println("--------------------")
	for i, file := range files {
		fmt.Printf("%d. %s\n", i+1, filepath.Base(file))
	}
	fmt.Println("--------------------")

	bar := ui.NewProgressBar(len(files), "processing", "")
	for _, file := range files {
		startTime := time.Now()

		result, err := proc.processFile(file)
		if err != nil {
			logrus.Errorf("failed to process %s: %v", file, err)
			bar.Increment(filepath.Base(file))
			continue
		}

		bar.Increment(filepath.Base(file))
		fmt.Println()
		printSummary(config, result)

		duration := time.Since(startTime)
		fmt.Printf("processing time: %s\n", utils.FormatTimeDuration(duration.Seconds()))
	}
	bar.Complete("done")

	fmt.Println("\nall files processed!")
}

// processor bundles the pipeline with the configured exporters.
type processor struct {
	config       *models.Config
	pipe         *pipeline.Pipeline
	textExporter *export.TextExporter
	jsonExporter *export.JSONExporter
	retry        *utils.ErrorHandler
}

func newProcessor(config *models.Config) *processor {
	return &processor{
		config:       config,
		pipe:         pipeline.New(config),
		textExporter: export.NewTextExporter(config.OutputFolder, config.SpeakerNames),
		jsonExporter: export.NewJSONExporter(config.OutputFolder),
		retry:        utils.NewErrorHandler(3, 1.0),
	}
}

// processFile runs one recognition result file through the full pipeline and
// writes the enabled exports.
func (p *processor) processFile(path string) (*pipeline.Result, error) {
	rec := recognizer.NewFileRecognizer(path, recognizer.Options{
		Language: p.config.Language,
		Context:  p.config.InterviewContext,
	})

	raw, err := rec.GetResult(context.Background(), nil)
	if err != nil {
		return nil, err
	}

	result, err := p.pipe.Process(raw)
	if err != nil {
		return nil, err
	}

	if p.config.ExportText {
		if _, err := p.textExporter.ExportTranscript(result.Turns, result.Report, p.config.Language, path); err != nil {
			return nil, err
		}
	}
	if p.config.ExportJSON {
		if _, err := p.jsonExporter.ExportJSON(result.RunID, result.Turns, result.Report, p.config.Language, path); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func printWelcome() {
	fmt.Println()
	color.Cyan("================================")
	color.Cyan("   interview transcript processor")
	color.Cyan("================================")
	fmt.Println()
}

func loadConfig() *models.Config {
	fmt.Print("loading config... ")

	config := models.NewDefaultConfig()

	if *configFile != "" {
		if err := config.LoadFromFile(*configFile); err != nil {
			color.Yellow("warning: failed to load config file: %v", err)
			logrus.Warnf("config load failed: %v, falling back to defaults", err)
		} else {
			color.Green("ok")
		}
	} else {
		color.Yellow("no config file given, using defaults")
	}

	// Flags override the config file.
	if *inputDir != "./recognitions" {
		config.InputFolder = *inputDir
	}
	if *outputDir != "./transcripts" {
		config.OutputFolder = *outputDir
	}
	if *watchMode {
		config.WatchMode = true
	}

	os.MkdirAll(config.InputFolder, 0755)
	os.MkdirAll(config.OutputFolder, 0755)

	return config
}

// printSummary prints the run statistics block, mirroring what the report
// exporters write.
func printSummary(config *models.Config, result *pipeline.Result) {
	report := result.Report

	color.Green("run %s complete", result.RunID)
	fmt.Printf("total duration: %s\n", utils.FormatDuration(report.TotalDuration))
	fmt.Printf("total turns: %d\n", report.TotalTurns)
	fmt.Printf("total words: %d\n", report.TotalWords)
	if report.WordsPerMinute != nil {
		fmt.Printf("speech rate: %.1f words/minute\n", *report.WordsPerMinute)
	}

	speakers := make([]string, 0, len(report.Speakers))
	for label := range report.Speakers {
		speakers = append(speakers, label)
	}
	sort.Strings(speakers)
	for _, label := range speakers {
		s := report.Speakers[label]
		name := label
		if mapped, ok := config.SpeakerNames[label]; ok {
			name = mapped
		}
		fmt.Printf("%s: %d turns, %s talk time, %d words\n",
			name, s.TurnCount, utils.FormatTimeDuration(s.TalkTime), s.WordCount)
	}

	fmt.Println("\nquality metrics:")
	fmt.Printf("audio quality: %s\n", report.AudioQuality)
	fmt.Printf("average confidence: %.3f (higher is better)\n", report.MeanConfidence)
	fmt.Printf("high confidence segments: %.1f%%\n", report.HighConfidenceRatio*100)
	fmt.Printf("speech vs silence: %.1f%% speech\n", report.SpeechRatio*100)
	fmt.Printf("pauses: %d (%.1fs total)\n", report.PauseCount, report.TotalPauseTime)
	if result.Dropped > 0 || result.Skipped > 0 {
		color.Yellow("dropped %d below confidence cutoff, skipped %d invalid", result.Dropped, result.Skipped)
	}
}

// runWatch processes result files as they appear in the input folder until
// interrupted.
func runWatch(config *models.Config, proc *processor) {
	handler := watcher.FileEventHandlerFunc(func(filePath string) {
		err := proc.retry.Retry("process "+filepath.Base(filePath), func() error {
			result, err := proc.processFile(filePath)
			if err != nil {
				return err
			}
			printSummary(config, result)
			return nil
		})
		if err != nil {
			logrus.Errorf("giving up on %s: %v", filePath, err)
		}
	})

	monitor, err := watcher.NewFolderMonitor(config.InputFolder, []string{".json"}, handler, 2*time.Second)
	if err != nil {
		logrus.Fatalf("failed to create folder monitor: %v", err)
	}
	if err := monitor.Start(); err != nil {
		logrus.Fatalf("failed to start folder monitor: %v", err)
	}
	defer monitor.Stop()

	color.Cyan("watch mode: drop recognition result files into %s", config.InputFolder)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nshutting down")
}
