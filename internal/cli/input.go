// Package cli handles cmd line input and ranked answer output for DBG and testing various features
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/beesolve/internal/logger"
	"github.com/bastiangx/beesolve/internal/utils"
	"github.com/bastiangx/beesolve/pkg/puzzle"
	"github.com/bastiangx/beesolve/pkg/solver"
	"github.com/charmbracelet/log"
)

// InputHandler processes puzzle lines from stdin and prints ranked answers.
// Each line is "LETTERS [REQUIRED]"; the required letter defaults to the
// first of the seven.
type InputHandler struct {
	solver       *solver.Solver
	log          *log.Logger
	limit        int
	minScore     float64
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(s *solver.Solver, limit int, minScore float64) *InputHandler {
	return &InputHandler{
		solver:   s,
		log:      logger.New(""),
		limit:    limit,
		minScore: minScore,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("beesolve CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("enter seven letters and an optional required letter, e.g. 'nacuotp n' (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput solves a single puzzle line and prints ranked results.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	fields := strings.Fields(line)
	letters := fields[0]
	required := ""
	if len(fields) > 1 {
		required = fields[1]
	}

	start := time.Now()
	results, stats, err := h.solver.SolveWithStats(letters, required)
	if err != nil {
		if errors.Is(err, puzzle.ErrInvalidInput) {
			h.log.Errorf("Bad puzzle: %v", err)
		} else {
			h.log.Errorf("Solve failed: %v", err)
		}
		return
	}
	elapsed := time.Since(start)
	h.log.Debugf("Took [ %v ] for puzzle '%s'", elapsed, line)

	if h.minScore > 0 {
		kept := results[:0]
		for _, r := range results {
			if r.Confidence >= h.minScore {
				kept = append(kept, r)
			}
		}
		results = kept
	}
	if len(results) == 0 {
		h.log.Warnf("No answers found for '%s'", line)
		return
	}
	if h.limit > 0 && len(results) > h.limit {
		results = results[:h.limit]
	}

	h.log.Printf("Found %s answers (%s dictionary words scanned):",
		utils.FormatWithCommas(stats.Scored), utils.FormatWithCommas(stats.DictionarySize))
	for i, r := range results {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Word)
		mark := ""
		if r.Pangram {
			mark = " \033[38;5;220m*pangram*\033[0m"
		}
		h.log.Printf("%2d. %-40s (confidence: %5.1f)%s", i+1, clWord, r.Confidence, mark)
	}
}
