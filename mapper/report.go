package mapper

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/theimaginaryfoundation/taxonomy-bot/mapper/fileutils"
)

// costPerMillionTokens is a rough blended price used for the report's
// estimate only; it is not billing data.
const costPerMillionTokens = 0.20

var (
	reportTitle   = color.New(color.FgMagenta, color.Bold)
	reportSection = color.New(color.FgCyan, color.Bold)
	reportGood    = color.New(color.FgGreen)
	reportBad     = color.New(color.FgYellow)
)

// WriteReport prints the human-readable execution report: processing
// summary, model metrics, validation/safety counters, and per-case detail
// with truncated reasoning.
func WriteReport(w io.Writer, runID string, results []Result, m RunMetrics) {
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(w, rule)
	reportTitle.Fprintln(w, "STORY TAXONOMY MAPPER - EXECUTION REPORT")
	if runID != "" {
		fmt.Fprintf(w, "run %s\n", runID)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	successRate := 0.0
	if m.TotalCases > 0 {
		successRate = float64(m.Mapped) / float64(m.TotalCases) * 100
	}
	avgTokens := 0.0
	if m.ModelCalls > 0 {
		avgTokens = float64(m.TotalTokens) / float64(m.ModelCalls)
	}
	estimatedCost := float64(m.TotalTokens) / 1_000_000 * costPerMillionTokens

	reportSection.Fprintln(w, "PROCESSING SUMMARY")
	fmt.Fprintf(w, "   Total Cases: %d\n", m.TotalCases)
	fmt.Fprintf(w, "   Successfully Mapped: %d\n", m.Mapped)
	fmt.Fprintf(w, "   Unmapped: %d\n", m.Unmapped)
	fmt.Fprintf(w, "   Success Rate: %.1f%%\n", successRate)
	fmt.Fprintln(w)

	reportSection.Fprintln(w, "MODEL METRICS")
	fmt.Fprintf(w, "   Total Model Calls: %d\n", m.ModelCalls)
	fmt.Fprintf(w, "   Call Failures: %d\n", m.CallFailures)
	fmt.Fprintf(w, "   Total Tokens: %d\n", m.TotalTokens)
	fmt.Fprintf(w, "   Avg Tokens/Case: %.1f\n", avgTokens)
	fmt.Fprintf(w, "   Estimated Cost: $%.4f\n", estimatedCost)
	fmt.Fprintln(w)

	reportSection.Fprintln(w, "VALIDATION & SAFETY")
	fmt.Fprintf(w, "   Validation Triggers: %d\n", m.ValidationTriggers)
	fmt.Fprintf(w, "   Hallucinations Caught: %d\n", m.HallucinationsCaught)
	fmt.Fprintln(w)

	reportSection.Fprintln(w, "DETAILED RESULTS")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, r := range results {
		fmt.Fprintf(w, "Case %s\n", r.CaseID)
		if r.Mapped() {
			reportGood.Fprintf(w, "   Classification: %s\n", r.Category)
		} else {
			reportBad.Fprintf(w, "   Classification: %s\n", r.Category)
		}
		fmt.Fprintf(w, "   Confidence: %.2f\n", r.Confidence)
		if len(r.Patterns) > 0 {
			fmt.Fprintf(w, "   Matched Patterns: %s\n", strings.Join(r.Patterns, ", "))
		}
		if r.HallucinationCaught {
			reportBad.Fprintln(w, "   Hallucination caught and replaced")
		}
		if r.CallFailed {
			reportBad.Fprintln(w, "   Classifier call failed")
		}
		fmt.Fprintf(w, "   Reasoning: %s\n", fileutils.Truncate(r.Reasoning, 150))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, rule)
}
