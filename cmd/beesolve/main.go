// Copyright 2026 The beesolve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the beesolve puzzle solver CLI.

beesolve answers seven-letter "must contain the center letter" word puzzles:
given seven distinct letters and one required letter it finds every
dictionary word that qualifies, filters out words a curated answer key
would exclude, and ranks the rest by a 0-100 confidence estimate.

# Usage

Solve one puzzle and print the ranked answers:

	beesolve -l nacuotp -r n

Run interactively, reading puzzles from stdin:

	beesolve -i

Each interactive line is seven letters plus an optional required letter:

	> nacuotp n

# Configuration

Runtime configuration is managed through a TOML file that covers the
blacklist tiers, the phonotactic rule toggles, and reference data paths:

	[rejection]
	light_threshold = 3
	heavy_threshold = 5
	instant_threshold = 10

	[phonotactic]
	max_consonant_run = 4
	max_vowel_run = 3

The config file is automatically created with defaults if it doesn't exist.

# Reference data

The dictionary is a plain text word list, one word per line. Two optional
files enrich the pipeline: a msgpack history snapshot carrying per-word
rejection counts and acceptance frequencies from past puzzles, and a TOML
lexicon with curated obsolete/archaic/proper-noun/foreign sets. Both are
soft dependencies; when missing, the layers that need them are disabled
and solving continues on the static heuristics alone.

# Pipeline

The solver package wires the stages: puzzle validation, trie-pruned
dictionary scan, phonotactic pre-filtering, layered rejection
classification, six-judge confidence scoring with an outlier-trimmed mean,
and the final (confidence, length, alphabetical) sort.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/beesolve/internal/cli"
	"github.com/bastiangx/beesolve/internal/logger"
	"github.com/bastiangx/beesolve/pkg/classifier"
	"github.com/bastiangx/beesolve/pkg/config"
	"github.com/bastiangx/beesolve/pkg/dictionary"
	"github.com/bastiangx/beesolve/pkg/generate"
	"github.com/bastiangx/beesolve/pkg/history"
	"github.com/bastiangx/beesolve/pkg/lexicon"
	"github.com/bastiangx/beesolve/pkg/nlp"
	"github.com/bastiangx/beesolve/pkg/phonotactic"
	"github.com/bastiangx/beesolve/pkg/puzzle"
	"github.com/bastiangx/beesolve/pkg/score"
	"github.com/bastiangx/beesolve/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "beesolve"
	gh      = "https://github.com/bastiangx/beesolve"
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

// main wires the pipeline from flags and config; the solving logic lives in
// the pkg packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	interactive := flag.Bool("i", false, "Read puzzles interactively from stdin")
	lettersFlag := flag.String("l", "", "The seven puzzle letters")
	requiredFlag := flag.String("r", "", "The required letter (defaults to first of -l)")
	dictPath := flag.String("dict", defaults.Data.DictionaryPath, "Path to the word list (one word per line)")
	historyPath := flag.String("history", defaults.Data.HistoryPath, "Path to the msgpack history snapshot (optional)")
	lexiconPath := flag.String("lexicon", defaults.Data.LexiconPath, "Path to the TOML lexicon metadata (optional)")
	limit := flag.Int("limit", 0, "Maximum answers to print (0 for all)")
	minScore := flag.Float64("min", 0, "Minimum confidence in [0,100]")
	useNLP := flag.Bool("nlp", false, "Enable the heuristic proper-noun checker layer")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[ beesolve ] Solves seven-letter word puzzles!")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(activePath))

	// Flags override config paths when explicitly set.
	if *dictPath == defaults.Data.DictionaryPath {
		*dictPath = cfg.Data.DictionaryPath
	}
	if *historyPath == defaults.Data.HistoryPath {
		*historyPath = cfg.Data.HistoryPath
	}
	if *lexiconPath == defaults.Data.LexiconPath {
		*lexiconPath = cfg.Data.LexiconPath
	}

	words, err := dictionary.LoadTextFile(*dictPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	store := dictionary.FromProvider(words)
	log.Debugf("Indexed %d dictionary words", store.Len())

	// Optional layers: missing files disable them, never fatal.
	hist, _ := history.Load(*historyPath)
	lex, _ := lexicon.Load(*lexiconPath)

	var checker nlp.ProperNounChecker
	if *useNLP {
		checker = nlp.NewMemo(nlp.NewHeuristic())
	}

	cls := classifier.New(classifier.Config{
		MinLength:   cfg.Solver.MinWordLength,
		Thresholds:  cfg.Thresholds(),
		Multipliers: cfg.Multipliers(),
		History:     hist,
		Lexicon:     lex,
		NLP:         checker,
	})

	var prefilter *phonotactic.Filter
	if cfg.Solver.EnablePhonotactic {
		prefilter = phonotactic.NewFilter(cfg.RuleConfig())
	}
	gen, err := generate.NewWithOptions(cfg.Solver.MinWordLength, prefilter, cls.RemoveRejected)
	if err != nil {
		log.Fatalf("Bad generator config: %v", err)
	}

	scorer := score.New(cls, hist)
	slv := solver.New(store, gen, cls, scorer)

	if *interactive {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(slv, *limit, *minScore)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *lettersFlag == "" {
		fmt.Fprintln(os.Stderr, "need -l LETTERS (or -i for interactive mode), see -h")
		os.Exit(2)
	}

	results, stats, err := slv.SolveWithStats(*lettersFlag, *requiredFlag)
	if err != nil {
		if errors.Is(err, puzzle.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "bad puzzle: %v\n", err)
			os.Exit(2)
		}
		log.Fatalf("Solve failed: %v", err)
	}

	printed := 0
	for _, r := range results {
		if *minScore > 0 && r.Confidence < *minScore {
			continue
		}
		if *limit > 0 && printed >= *limit {
			break
		}
		mark := ""
		if r.Pangram {
			mark = "  *pangram*"
		}
		fmt.Printf("%-24s %5.1f%s\n", r.Word, r.Confidence, mark)
		printed++
	}
	log.Debugf("%d answers from %d candidates in %v", printed, stats.Candidates, stats.Elapsed)
}
