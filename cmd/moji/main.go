// Package main is the moji CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/moji/internal/cli"
	"github.com/hyperjump/moji/internal/config"
	"github.com/hyperjump/moji/internal/extract"
	"github.com/hyperjump/moji/internal/models"
	"github.com/hyperjump/moji/internal/server"
	"github.com/hyperjump/moji/internal/textops"
	"github.com/hyperjump/moji/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/moji/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. When neither exists the built-in defaults apply, so the CLI
// works without an installed config file.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "analyze":
		runAnalyze()
	case "extract":
		runExtract()
	case "palindrome":
		runPalindrome()
	case "caesar":
		runCaesar()
	case "server":
		runServer()
	case "version", "--version", "-v":
		fmt.Printf("moji version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// joinArgs joins all positional args with spaces so multi-word input works
// the same with or without shell quoting.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// reorderArgs moves any flags (and their values) that appear after positional
// arguments to the front of the slice so that flag.Parse() sees them. Go's
// flag package stops at the first non-flag argument, so
// "moji caesar hello -shift 5" would otherwise leave -shift unparsed.
func reorderArgs(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// parseOutputFormat maps the -output flag value, exiting on unknown values.
func parseOutputFormat(value string) cli.OutputFormat {
	switch value {
	case "text":
		return cli.OutputText
	case "json":
		return cli.OutputJSON
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", value)
		os.Exit(1)
		return cli.OutputText
	}
}

// newExtractor builds the extractor from config, with debug logging wired in.
func newExtractor(cfg *config.Config, logger *zap.Logger) *extract.Extractor {
	opts := []extract.ExtractorOption{extract.WithMaxFileSize(cfg.Extract.MaxFileSize)}
	if cfg.Debug {
		opts = append(opts, extract.WithLogger(logger))
	}
	return extract.NewExtractor(opts...)
}

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	top := fs.Int("top", 0, "show only the N most frequent words (0 = config default, which is all)")
	_ = fs.Parse(reorderArgs(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: moji analyze [flags] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	text, err := newExtractor(cfg, logger).Extract(path)
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		fmt.Fprintf(os.Stderr, "Unsupported file: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open or parse file: %v\n", err)
		os.Exit(1)
	}

	var report *models.FrequencyReport
	if strings.TrimSpace(text) == "" {
		report = models.NewFrequencyReport(path, nil)
		report.NoText = true
		fmt.Fprintln(os.Stderr, "No extractable text was found. If this is a scanned or image-only document, it cannot be analyzed.")
	} else {
		words := textops.Frequencies(text)
		report = models.NewFrequencyReport(path, words)
		topN := *top
		if topN == 0 {
			topN = cfg.Analyze.TopWords
		}
		if topN > 0 && len(report.Words) > topN {
			report.Words = report.Words[:topN]
		}
	}
	if err := cli.WriteFrequencyReport(os.Stdout, report, parseOutputFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runExtract() {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(reorderArgs(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: moji extract [flags] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	text, err := newExtractor(cfg, logger).Extract(path)
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		fmt.Fprintf(os.Stderr, "Unsupported file: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open or parse file: %v\n", err)
		os.Exit(1)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "No text found in document.")
		return
	}
	fmt.Println(text)
}

func runPalindrome() {
	fs := flag.NewFlagSet("palindrome", flag.ExitOnError)
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(reorderArgs(os.Args[2:]))

	text := joinArgs(fs.Args())
	if text == "" {
		fmt.Fprintln(os.Stderr, "Please enter some text to check.")
		os.Exit(1)
	}
	resp := &models.PalindromeResponse{Text: text, Palindrome: textops.IsPalindrome(text)}
	if err := cli.WritePalindromeResult(os.Stdout, resp, parseOutputFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runCaesar() {
	fs := flag.NewFlagSet("caesar", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	// The shift is a string flag so non-integer input fails through ParseShift
	// rather than flag parsing, keeping the error message consistent.
	shiftStr := fs.String("shift", "", "alphabet shift, any integer (default from config)")
	decrypt := fs.Bool("decrypt", false, "shift backwards (decrypt)")
	_ = fs.Parse(reorderArgs(os.Args[2:]))

	text := joinArgs(fs.Args())
	if text == "" {
		fmt.Fprintln(os.Stderr, "Enter some text to transform.")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	shift := cfg.Caesar.DefaultShift
	if *shiftStr != "" {
		shift, err = textops.ParseShift(*shiftStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Shift must be an integer.")
			os.Exit(1)
		}
	}
	if *decrypt {
		shift = -shift
	}
	fmt.Println(textops.Caesar(text, shift))
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (per-request detail)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.Debug = cfg.Debug || *debug
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded", zap.Bool("debug", cfg.Debug))

	srv := server.NewServer(newExtractor(cfg, logger), cfg, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func printUsage() {
	fmt.Println(`moji - Text and string tools: word frequency, palindrome check, Caesar cipher

Usage:
  moji analyze [flags] <file>       Word frequency for a document
  moji extract [flags] <file>       Print a document's extracted plain text
  moji palindrome [flags] <text>    Check whether text is a palindrome
  moji caesar [flags] <text>        Caesar-cipher text
  moji server [flags]               Start the HTTP API server
  moji version                      Show version
  moji help                         Show this help

Supported document formats: .txt .md .log .csv .html .htm .docx .pdf .pptx
Images and image-only content (e.g. scanned PDFs) yield no text.

Analyze Flags:
  --config string    Config file path (default: /usr/local/etc/moji/config.yaml)
  --output string    Output format: text or json (default: text)
  --top int          Show only the N most frequent words (0 = all)

Caesar Flags:
  --config string    Config file path
  --shift int        Alphabet shift; any integer, reduced mod 26 (default from config: 3)
  --decrypt          Shift backwards (decrypt)

Server Flags:
  --config string    Config file path
  --debug            Enable debug logging (per-request detail)

Examples:
  moji analyze report.pdf
  moji analyze --top 20 --output json notes.docx
  moji extract slides.pptx
  moji palindrome "A man, a plan, a canal: Panama"
  moji caesar --shift 5 attack at dawn
  moji caesar --shift 5 --decrypt fyyfhp fy ifbs
  moji server --debug`)
}
