package keyword

import (
	"errors"
	"strings"
	"testing"
)

// stubTagger tags every whitespace-separated token with a fixed tag per
// word, defaulting to NN. Deterministic, unlike a statistical tagger.
type stubTagger struct {
	tags map[string]string // word -> tag override
	err  error
}

func (s *stubTagger) Tag(text string) ([]Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Token
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,!?")
		if w == "" {
			continue
		}
		tag := "NN"
		if t, ok := s.tags[w]; ok {
			tag = t
		}
		out = append(out, Token{Text: w, Tag: tag})
	}
	return out, nil
}

func TestExtractN_RanksByFrequency(t *testing.T) {
	e := New(&stubTagger{tags: map[string]string{
		"operating": "VBG",
		"manage":    "VBP",
		"and":       "CC",
		"handles":   "VBZ",
	}}, DefaultStopwords(), DefaultTopN)

	text := "Operating systems manage memory and processes. Memory management handles processes."
	got := e.ExtractN(text, 3)

	// memory and processes tie at 2; memory occurs first in the text.
	want := []string{"memory", "processes", "systems"}
	if len(got) != len(want) {
		t.Fatalf("ExtractN() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExtractN()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractN_TiesKeepFirstOccurrence(t *testing.T) {
	e := New(&stubTagger{}, nil, DefaultTopN)

	got := e.ExtractN("alpha beta gamma", 3)
	want := []string{"alpha", "beta", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ExtractN() = %v, want %v", got, want)
		}
	}
}

func TestExtractN_TruncatesToTopN(t *testing.T) {
	e := New(&stubTagger{}, nil, DefaultTopN)

	got := e.ExtractN("one two three four five six seven", 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestExtractN_FiltersNonNouns(t *testing.T) {
	e := New(&stubTagger{tags: map[string]string{
		"runs":    "VBZ",
		"quickly": "RB",
	}}, nil, DefaultTopN)

	got := e.ExtractN("scheduler runs quickly", 5)
	if len(got) != 1 || got[0] != "scheduler" {
		t.Errorf("ExtractN() = %v, want [scheduler]", got)
	}
}

func TestExtractN_FiltersStopwordsAndNumbers(t *testing.T) {
	e := New(&stubTagger{}, []string{"the", "part"}, DefaultTopN)

	got := e.ExtractN("the part 42 kernel", 5)
	if len(got) != 1 || got[0] != "kernel" {
		t.Errorf("ExtractN() = %v, want [kernel]", got)
	}
}

func TestExtractN_Lowercases(t *testing.T) {
	e := New(&stubTagger{}, nil, DefaultTopN)

	got := e.ExtractN("Kernel KERNEL kernel", 5)
	if len(got) != 1 || got[0] != "kernel" {
		t.Errorf("ExtractN() = %v, want one lowercase kernel", got)
	}
}

func TestExtractN_EmptyInput(t *testing.T) {
	// A tagger call on empty input would fail the test via the error path.
	e := New(&stubTagger{err: errors.New("must not be called")}, nil, DefaultTopN)

	if got := e.ExtractN("", 5); got != nil {
		t.Errorf("ExtractN(\"\") = %v, want nil", got)
	}
	if got := e.ExtractN("   \n\t", 5); got != nil {
		t.Errorf("ExtractN(whitespace) = %v, want nil", got)
	}
}

func TestExtractN_TaggerFailureDegradesToNil(t *testing.T) {
	e := New(&stubTagger{err: errors.New("model unavailable")}, nil, DefaultTopN)

	if got := e.ExtractN("some text", 5); got != nil {
		t.Errorf("ExtractN() = %v, want nil on tagger failure", got)
	}
}

func TestExtract_UsesConfiguredTopN(t *testing.T) {
	e := New(&stubTagger{}, nil, 2)

	got := e.Extract("alpha beta gamma")
	if len(got) != 2 {
		t.Errorf("Extract() returned %d keywords, want 2", len(got))
	}
}

func TestNewDefault_RealTagger(t *testing.T) {
	e := NewDefault()

	input := "The kernel schedules the kernel threads on the kernel."
	got := e.ExtractN(input, 5)

	if len(got) > 5 {
		t.Fatalf("ExtractN() returned %d keywords, want at most 5", len(got))
	}

	seen := make(map[string]bool)
	lowered := strings.ToLower(input)
	found := false
	for _, k := range got {
		if k == "kernel" {
			found = true
		}
		if seen[k] {
			t.Errorf("duplicate keyword %q", k)
		}
		seen[k] = true
		if k != strings.ToLower(k) {
			t.Errorf("keyword %q not lowercase", k)
		}
		if !strings.Contains(lowered, k) {
			t.Errorf("keyword %q does not occur in the input", k)
		}
	}
	if !found {
		t.Errorf("ExtractN() = %v, expected kernel among keywords", got)
	}
}
