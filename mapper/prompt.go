package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/theimaginaryfoundation/taxonomy-bot/mapper/fileutils"
)

// maxPromptExcerptChars caps how much of the excerpt goes into the prompt.
const maxPromptExcerptChars = 4000

// BuildPrompt serializes one classification payload. The full leaf set is
// enumerated verbatim so the model can only echo a listed value or the
// sentinel, and the shortlist rides along as an advisory hint. Deterministic
// for identical inputs.
func BuildPrompt(t *Taxonomy, req Request, shortlist []string) string {
	var b strings.Builder

	b.WriteString("You are assisting a strict story taxonomy classification system.\n\n")

	b.WriteString("VALID CATEGORIES (closed set):\n")
	for _, path := range t.LeafPaths() {
		fmt.Fprintf(&b, "- %s\n", path)
	}

	b.WriteString("\nRULES:\n")
	fmt.Fprintf(&b, "1. Choose exactly ONE category from the list above, verbatim.\n")
	fmt.Fprintf(&b, "2. If none of the listed categories applies, respond with %q.\n", Unmapped)
	b.WriteString("3. Story context overrides user tags when they disagree.\n")
	fmt.Fprintf(&b, "4. Non-narrative text (instructions, manuals, procedures) is always %q.\n", Unmapped)
	b.WriteString("5. Do NOT invent category names.\n")

	if len(shortlist) > 0 {
		b.WriteString("\nKEYWORD HINTS (advisory only, never authoritative):\n")
		for _, path := range shortlist {
			fmt.Fprintf(&b, "- %s\n", path)
		}
	}

	tags := "[]"
	if len(req.Tags) > 0 {
		if enc, err := json.Marshal(req.Tags); err == nil {
			tags = string(enc)
		}
	}
	fmt.Fprintf(&b, "\nUser tags: %s\n", tags)
	excerpt := fileutils.Truncate(fileutils.SanitizeNewlines(req.Excerpt), maxPromptExcerptChars)
	fmt.Fprintf(&b, "Story excerpt: %q\n", excerpt)

	b.WriteString("\nRespond ONLY with a JSON object of this shape:\n")
	fmt.Fprintf(&b, `{"mapped_category": "Genre/Sub-genre or %s", "confidence": 0.95, "reasoning": "brief justification grounded in the story context"}`, Unmapped)
	b.WriteString("\n")

	return b.String()
}
