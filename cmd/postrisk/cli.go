package main

import (
	"context"
	"io"

	"github.com/mwalczyk-dev/postrisk"
	"github.com/mwalczyk-dev/postrisk/file"
)

// ConnectionChecker verifies API connectivity with a minimal round-trip.
type ConnectionChecker interface {
	TestConnection(ctx context.Context) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Analyzer postrisk.Analyzer
	Web      postrisk.WebExtractor
	Files    *file.Extractor
	Checker  ConnectionChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze content for publication risk"`
	Batch   BatchCmd   `cmd:"" help:"Analyze multiple content items from a file"`
	Extract ExtractCmd `cmd:"" help:"Extract content from a URL without analyzing it"`
	Check   CheckCmd   `cmd:"" help:"Verify API connectivity"`
}

// SettingsFlags are the shared analysis settings flags.
type SettingsFlags struct {
	Platform    string `default:"General" help:"Target platform (Twitter, LinkedIn, Instagram, Facebook, YouTube, TikTok, General)"`
	AuthorType  string `name:"author-type" default:"Individual" help:"Author profile type (Individual, Public Figure, Corporate, Influencer, Journalist, Politician)"`
	Audience    string `default:"< 1K followers" help:"Estimated audience reach bucket"`
	Sensitivity int    `default:"5" help:"Analysis sensitivity 1-10 (higher = more conservative)"`
}

// Settings converts the flags into analysis settings.
func (f *SettingsFlags) Settings() postrisk.AnalysisSettings {
	return postrisk.AnalysisSettings{
		Platform:     postrisk.Platform(f.Platform),
		AuthorType:   postrisk.AuthorType(f.AuthorType),
		AudienceSize: postrisk.AudienceSize(f.Audience),
		Sensitivity:  f.Sensitivity,
	}
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Text string `arg:"" optional:"" help:"Content text to analyze"`
	File string `short:"f" type:"existingfile" help:"Analyze the content of a file (txt, pdf, docx, jpg, png)"`
	URL  string `short:"u" help:"Analyze the content of a web page"`

	SettingsFlags
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File string `arg:"" type:"existingfile" help:"File with one content item per line"`

	SettingsFlags
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"URL to extract"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}
