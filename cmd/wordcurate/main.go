/*
Package main implements the wordcurate CLI, a batch curation tool for
guessing-game word lists.

The tool reads a candidate word list, scores every word against a Zipf
frequency dictionary, and splits the list by threshold into three artifacts:
a curated answer list, an allowed-guesses list, and a CSV report of the words
that fell below the cutoff together with the score that excluded them.

# Usage

Curate the default list with the default threshold:

	wordcurate

Use a custom source and a stricter cutoff:

	wordcurate -source words.txt -output answers.txt -threshold 4.0

Restrict the allowed-guesses list too (by default every source word stays
guessable):

	wordcurate -guesses-threshold 2.0

Compile the text frequency dictionary into a msgpack cache for faster runs:

	wordcurate -freq data/en_freq.txt -compile-freq data/en_freq.msgpack

# Configuration

Runtime defaults live in wordcurate.toml in the working directory. The file
is created with defaults on first run if it doesn't exist:

	[curate]
	source = "server/allowed_guesses.txt"
	rejects = "server/rejected_words.csv"
	guesses_output = "server/allowed_guesses.txt"
	threshold = 3.4

	[dict]
	freq_path = "data/en_freq.txt"

Command line flags override the file. The answer list destination defaults
to overwriting the source.

# Pipeline

The run is a single pass: load, score, partition, write. A missing source
file aborts before anything is scored or written. Write failures abort the
run and leave already-written artifacts in place. On success a four-line
summary reports the loaded/kept/removed counts and the output paths.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcurate/internal/logger"
	"github.com/bastiangx/wordcurate/internal/utils"
	"github.com/bastiangx/wordcurate/pkg/config"
	"github.com/bastiangx/wordcurate/pkg/curate"
	"github.com/bastiangx/wordcurate/pkg/freq"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version    = "0.3.0"
	AppName    = "wordcurate"
	gh         = "https://github.com/bastiangx/wordcurate"
	configFile = "wordcurate.toml"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, flags and the curation pipeline together.
// All actual logic lives in pkg/curate and pkg/freq; main only manages flow.
func main() {
	sigHandler()

	cfg, err := config.InitConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to init config: %v", err)
	}

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	source := flag.String("source", cfg.Curate.Source, "Path to the source words file")
	output := flag.String("output", cfg.Curate.Output, "Where to write the curated answer list (default: overwrite -source)")
	rejects := flag.String("rejects", cfg.Curate.Rejects, "CSV file describing which words were removed and why")
	guessesOutput := flag.String("guesses-output", cfg.Curate.GuessesOutput, "Where to write the allowed-guesses list")
	threshold := flag.Float64("threshold", cfg.Curate.Threshold, "Minimum Zipf frequency required for the answer list")
	guessesThreshold := flag.String("guesses-threshold", "", "Optional minimum Zipf frequency for allowed guesses (default: keep all source words)")
	freqPath := flag.String("freq", cfg.Dict.FreqPath, "Frequency dictionary file (.txt corpus counts or compiled .msgpack cache)")
	compileFreq := flag.String("compile-freq", "", "Compile the frequency dictionary into a msgpack cache at the given path and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *compileFreq != "" {
		dict, err := freq.LoadText(*freqPath)
		if err != nil {
			log.Fatalf("Failed to load frequency dictionary: %v", err)
		}
		if err := dict.SaveCache(*compileFreq); err != nil {
			log.Fatalf("Failed to compile frequency cache: %v", err)
		}
		logger.Default("").Printf("Compiled %d words to: %s", dict.Len(), *compileFreq)
		return
	}

	// The guesses cutoff is tri-state: flag beats config, empty means unset.
	guessesCutoff, err := utils.ParseOptionalFloat(*guessesThreshold)
	if err != nil {
		log.Fatalf("Invalid -guesses-threshold: %v", err)
	}
	if guessesCutoff == nil {
		guessesCutoff = cfg.Curate.GuessesThreshold
	}

	// Missing source is a usage error; fail before anything is scored or written.
	words, err := curate.LoadWords(*source)
	if err != nil {
		log.Fatalf("%v", err)
	}

	dict, err := freq.Load(*freqPath)
	if err != nil {
		log.Fatalf("Failed to load frequency dictionary: %v", err)
	}
	log.Debugf("Frequency dictionary ready: %d words", dict.Len())

	scored := curate.ScoreWords(words, dict)
	kept, dropped := curate.Partition(scored, *threshold)

	outputPath := *output
	if outputPath == "" {
		outputPath = *source
	}
	if err := curate.SaveWordList(outputPath, kept); err != nil {
		log.Fatalf("Failed to write answer list: %v", err)
	}

	if *guessesOutput != "" {
		allowed := curate.AllowedGuesses(scored, guessesCutoff)
		if err := curate.SaveWordList(*guessesOutput, allowed); err != nil {
			log.Fatalf("Failed to write allowed-guesses list: %v", err)
		}
	}

	if err := curate.ExportRejects(*rejects, dropped); err != nil {
		log.Fatalf("Failed to write reject report: %v", err)
	}

	out := logger.Default("")
	out.Printf("Words loaded: %d", len(scored))
	out.Printf("Kept: %d (threshold >= %.2f)", len(kept), *threshold)
	out.Printf("Removed: %d (details: %s)", len(dropped), utils.GetAbsolutePath(*rejects))
	out.Printf("Wrote curated list to: %s", utils.GetAbsolutePath(outputPath))
}

// printVersion displays the styled version banner.
func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	l.SetStyles(styles)

	l.Print("")
	l.Print("[ wordcurate ] Curates word lists by Zipf frequency")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
