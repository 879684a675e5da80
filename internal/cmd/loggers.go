package cmd

import (
	"github.com/harrison/filebundle/internal/bundle"
	"github.com/harrison/filebundle/internal/display"
	"github.com/harrison/filebundle/internal/models"
)

// multiLogger implements bundle.Logger by delegating to multiple loggers
type multiLogger struct {
	loggers []bundle.Logger
}

// LogRunStart forwards to all loggers
func (ml *multiLogger) LogRunStart(info models.RunInfo) {
	for _, l := range ml.loggers {
		l.LogRunStart(info)
	}
}

// LogFileBundled forwards to all loggers
func (ml *multiLogger) LogFileBundled(outcome models.FileOutcome) {
	for _, l := range ml.loggers {
		l.LogFileBundled(outcome)
	}
}

// LogFileFailed forwards to all loggers
func (ml *multiLogger) LogFileFailed(outcome models.FileOutcome) {
	for _, l := range ml.loggers {
		l.LogFileFailed(outcome)
	}
}

// LogWalkError forwards to all loggers
func (ml *multiLogger) LogWalkError(err error) {
	for _, l := range ml.loggers {
		l.LogWalkError(err)
	}
}

// LogSummary forwards to all loggers
func (ml *multiLogger) LogSummary(result models.BundleResult) {
	for _, l := range ml.loggers {
		l.LogSummary(result)
	}
}

// progressLogger drives a ProgressIndicator from bundle events.
// Failed files get a progress line too; their details go to the warning block.
type progressLogger struct {
	progress *display.ProgressIndicator
}

func (p *progressLogger) LogRunStart(info models.RunInfo) {}

func (p *progressLogger) LogFileBundled(outcome models.FileOutcome) {
	p.progress.Step(outcome.Path)
}

func (p *progressLogger) LogFileFailed(outcome models.FileOutcome) {
	p.progress.Step(outcome.Path)
}

func (p *progressLogger) LogWalkError(err error) {}

func (p *progressLogger) LogSummary(result models.BundleResult) {
	p.progress.Complete(result)
}
