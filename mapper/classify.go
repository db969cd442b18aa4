package mapper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// maxReportedPatterns caps how many matched keyword patterns a result keeps.
const maxReportedPatterns = 5

// Classifier is the external completion capability: one prompt in, one typed
// verdict out. Failures are returned as errors and handled per case by the
// pipeline. Production uses the OpenAI-compatible provider; tests use
// deterministic stubs.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (Verdict, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, prompt string) (Verdict, error)

func (f ClassifierFunc) Classify(ctx context.Context, prompt string) (Verdict, error) {
	return f(ctx, prompt)
}

// Mapper runs the shortlist → prompt → classify → validate pipeline.
// Taxonomy and Backend are required; Keywords defaults to the built-in
// table and Logger to a no-op.
type Mapper struct {
	Taxonomy *Taxonomy
	Backend  Classifier
	Keywords *KeywordIndex
	Logger   *zap.Logger
}

func (m *Mapper) keywords() *KeywordIndex {
	if m.Keywords != nil {
		return m.Keywords
	}
	return DefaultKeywords()
}

func (m *Mapper) logger() *zap.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.NewNop()
}

// MapStory classifies one request end-to-end. It never returns an error:
// backend failures, unparseable replies, and invented categories all
// degrade that one case to the sentinel, and the returned category is
// always a verbatim leaf path or Unmapped.
func (m *Mapper) MapStory(ctx context.Context, req Request) Result {
	candidates, patterns := m.keywords().Shortlist(m.Taxonomy, req.Excerpt)
	if len(patterns) > maxReportedPatterns {
		patterns = patterns[:maxReportedPatterns]
	}

	res := Result{
		CaseID:        req.CaseID,
		Patterns:      patterns,
		ExpectedLogic: req.ExpectedLogic,
	}

	prompt := BuildPrompt(m.Taxonomy, req, candidates)
	verdict, err := m.Backend.Classify(ctx, prompt)
	if err != nil {
		m.logger().Error("classifier call failed",
			zap.String("case_id", req.CaseID),
			zap.Error(err))
		res.Category = Unmapped
		res.Confidence = 0
		res.Reasoning = fmt.Sprintf("classifier call failed: %v", err)
		res.CallFailed = true
		return res
	}

	res.TokensUsed = verdict.TokensUsed
	res.Confidence = clamp01(verdict.Confidence)
	res.Reasoning = strings.TrimSpace(verdict.Reasoning)

	category, outcome := m.Taxonomy.ResolveCategory(verdict.Category)
	res.Category = category
	switch outcome {
	case CategoryNormalized:
		res.Normalized = true
	case CategoryRejected:
		res.HallucinationCaught = true
		m.logger().Error("hallucinated category caught",
			zap.String("case_id", req.CaseID),
			zap.String("raw_category", verdict.Category))
	}
	return res
}

// Run processes cases strictly in order, one at a time, appending each
// result to log (when non-nil) as it is produced. A per-case failure never
// stops the batch; only context cancellation or a log write error does,
// in which case the results so far are returned alongside the error.
func (m *Mapper) Run(ctx context.Context, cases []Request, log *ResultLog) ([]Result, RunMetrics, error) {
	if m.Taxonomy == nil {
		return nil, RunMetrics{}, errors.New("mapper: Taxonomy is nil")
	}
	if m.Backend == nil {
		return nil, RunMetrics{}, errors.New("mapper: Backend is nil")
	}

	results := make([]Result, 0, len(cases))
	for _, req := range cases {
		if err := ctx.Err(); err != nil {
			return results, Summarize(results), err
		}
		res := m.MapStory(ctx, req)
		results = append(results, res)
		if log != nil {
			if err := log.Append(res); err != nil {
				return results, Summarize(results), fmt.Errorf("append result log: %w", err)
			}
		}
	}
	return results, Summarize(results), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
