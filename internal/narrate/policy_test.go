package narrate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPolicy_Blocked(t *testing.T) {
	p := NewPolicy("heck", " ", "", "Drat")

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}

	tests := []struct {
		words []string
		want  bool
	}{
		{[]string{"hello", "there"}, false},
		{[]string{"oh", "heck"}, true},
		{[]string{"DRAT"}, true},
		{[]string{"hectare"}, false},
		{[]string{"shecky"}, true},
		{nil, false},
	}
	for _, tt := range tests {
		if _, got := p.Blocked(tt.words); got != tt.want {
			t.Errorf("Blocked(%v) = %v, want %v", tt.words, got, tt.want)
		}
	}
}

func TestPolicy_Nil(t *testing.T) {
	var p *Policy
	if _, blocked := p.Blocked([]string{"anything"}); blocked {
		t.Error("nil policy blocked a word")
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestLoadDenylist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "denylist.yaml")
	content := `
vulgar:
  badwords: "darn  heck"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write denylist: %v", err)
	}

	p, err := LoadDenylist(path, "drat")
	if err != nil {
		t.Fatalf("LoadDenylist failed: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
	if _, blocked := p.Blocked([]string{"darn"}); !blocked {
		t.Error("word from file not blocked")
	}
	if _, blocked := p.Blocked([]string{"drat"}); !blocked {
		t.Error("extra word not blocked")
	}
}

func TestLoadDenylist_Missing(t *testing.T) {
	p, err := LoadDenylist(filepath.Join(t.TempDir(), "nope.yaml"), "drat")
	if err != nil {
		t.Fatalf("LoadDenylist failed: %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestLoadDenylist_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "denylist.yaml")
	if err := os.WriteFile(path, []byte("vulgar: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write denylist: %v", err)
	}
	if _, err := LoadDenylist(path); err == nil {
		t.Error("expected parse error")
	}
}
