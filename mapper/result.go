package mapper

// Request is one classification case: free-form user tags plus a short
// story excerpt. Read-only once created.
type Request struct {
	CaseID        string   `json:"id" yaml:"id"`
	Tags          []string `json:"user_tags" yaml:"user_tags"`
	Excerpt       string   `json:"story_snippet" yaml:"story_snippet"`
	ExpectedLogic string   `json:"expected_logic,omitempty" yaml:"expected_logic,omitempty"`
}

// Verdict is the typed reply from a classifier backend, before validation.
// Category is raw model output and must not be trusted until resolved
// against the taxonomy.
type Verdict struct {
	Category   string
	Confidence float64
	Reasoning  string
	TokensUsed int
}

// Result is the final, validated outcome for one case. Category is always
// either a verbatim taxonomy leaf path or Unmapped.
type Result struct {
	CaseID     string  `json:"test_case_id"`
	Category   string  `json:"mapped_category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`

	// Normalized is set when the raw category only matched after
	// case/whitespace folding.
	Normalized bool `json:"normalized,omitempty"`
	// HallucinationCaught is set when the model invented a category and the
	// validator replaced it with the sentinel.
	HallucinationCaught bool `json:"hallucination_caught,omitempty"`
	// CallFailed is set when the backend call itself failed and the case
	// degraded to the sentinel without a verdict.
	CallFailed bool `json:"call_failed,omitempty"`

	Patterns      []string `json:"matched_patterns,omitempty"`
	TokensUsed    int      `json:"tokens_used,omitempty"`
	ExpectedLogic string   `json:"expected_logic,omitempty"`
}

// Mapped reports whether the case resolved to a real taxonomy leaf.
func (r Result) Mapped() bool {
	return r.Category != Unmapped
}

// RunMetrics is the explicit per-run accumulator. It is owned by the batch
// runner and returned to the caller; nothing in the package keeps global
// counters.
type RunMetrics struct {
	TotalCases           int
	Mapped               int
	Unmapped             int
	ModelCalls           int
	TotalTokens          int
	ValidationTriggers   int
	HallucinationsCaught int
	CallFailures         int
}

// Summarize folds a result set into run metrics.
func Summarize(results []Result) RunMetrics {
	var m RunMetrics
	for _, r := range results {
		m.TotalCases++
		if r.Mapped() {
			m.Mapped++
		} else {
			m.Unmapped++
		}
		m.ModelCalls++
		m.TotalTokens += r.TokensUsed
		if r.Normalized || r.HallucinationCaught {
			m.ValidationTriggers++
		}
		if r.HallucinationCaught {
			m.HallucinationsCaught++
		}
		if r.CallFailed {
			m.CallFailures++
		}
	}
	return m
}
