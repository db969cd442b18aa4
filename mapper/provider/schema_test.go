package provider

import (
	"testing"
)

func TestClassifySchema_StrictShape(t *testing.T) {
	t.Parallel()

	schema := generateSchema[classifyReply]()

	if schema["type"] != "object" {
		t.Fatalf("type=%v", schema["type"])
	}
	if ap, ok := schema["additionalProperties"].(bool); !ok || ap {
		t.Fatalf("additionalProperties=%v, want false", schema["additionalProperties"])
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing properties")
	}
	for _, field := range []string{"mapped_category", "confidence", "reasoning"} {
		if _, ok := props[field]; !ok {
			t.Fatalf("schema missing %q", field)
		}
	}

	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatalf("required=%T", schema["required"])
	}
	if len(required) != len(props) {
		t.Fatalf("required=%v, want every property", required)
	}
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Model: "m"}); err == nil {
		t.Fatalf("missing API key: want error")
	}
	if _, err := New(Config{APIKey: "k"}); err == nil {
		t.Fatalf("missing model: want error")
	}
	if _, err := New(Config{APIKey: "k", Model: "m", Temperature: 3}); err == nil {
		t.Fatalf("temperature out of range: want error")
	}
	c, err := New(Config{APIKey: "k", Model: "m", Temperature: 0.1})
	if err != nil {
		t.Fatalf("valid config: %v", err)
	}
	if c.cfg.MaxOutputTokens != 500 {
		t.Fatalf("MaxOutputTokens default=%d, want 500", c.cfg.MaxOutputTokens)
	}
}
