package mapper

import "strings"

// CategoryOutcome describes how a raw model category resolved against the
// taxonomy.
type CategoryOutcome int

const (
	// CategoryExact means the raw value was verbatim in the leaf set.
	CategoryExact CategoryOutcome = iota
	// CategorySentinel means the model itself answered with the sentinel.
	CategorySentinel
	// CategoryNormalized means the raw value matched a unique leaf after
	// case/whitespace folding (or was a unique bare sub-genre name).
	CategoryNormalized
	// CategoryRejected means the raw value is outside the taxonomy and was
	// replaced with the sentinel.
	CategoryRejected
)

// ResolveCategory maps a raw model-returned category onto the taxonomy.
// The returned category is always either a verbatim leaf path or Unmapped —
// this is the closure guarantee every emitted result relies on.
func (t *Taxonomy) ResolveCategory(raw string) (string, CategoryOutcome) {
	raw = strings.TrimSpace(raw)
	if isSentinel(raw) {
		return Unmapped, CategorySentinel
	}
	if t.Contains(raw) {
		return raw, CategoryExact
	}
	if canonical, ok := t.byKey[normalizeCategoryKey(raw)]; ok {
		return canonical, CategoryNormalized
	}
	return Unmapped, CategoryRejected
}

// isSentinel accepts the canonical sentinel plus the bracketed spelling the
// model is prompted with, case-insensitively.
func isSentinel(raw string) bool {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	return strings.EqualFold(strings.TrimSpace(raw), Unmapped)
}
