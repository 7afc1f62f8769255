package narrate

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Policy is a denylist of words the narrator will not say.
// A nil Policy allows everything.
type Policy struct {
	words []string
}

// denylistFile is the on-disk denylist format:
//
//	vulgar:
//	  badwords: "word another"
type denylistFile struct {
	Vulgar struct {
		Badwords string `yaml:"badwords"`
	} `yaml:"vulgar"`
}

// NewPolicy builds a policy from words. Blank entries are dropped and
// matching is case-insensitive.
func NewPolicy(words ...string) *Policy {
	p := &Policy{}
	p.add(words)
	return p
}

// LoadDenylist reads a denylist file and merges extra words into it.
// A missing file is not an error.
func LoadDenylist(path string, extra ...string) (*Policy, error) {
	p := NewPolicy(extra...)
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return nil, fmt.Errorf("read denylist: %w", err)
	}

	var f denylistFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse denylist %s: %w", path, err)
	}
	p.add(strings.Fields(f.Vulgar.Badwords))
	return p, nil
}

// Blocked reports the first denylisted word found anywhere in the joined
// phrase, so partial matches inside longer words count.
func (p *Policy) Blocked(words []string) (string, bool) {
	if p == nil || len(p.words) == 0 {
		return "", false
	}
	phrase := strings.ToLower(strings.Join(words, " "))
	for _, w := range p.words {
		if strings.Contains(phrase, w) {
			return w, true
		}
	}
	return "", false
}

// Len returns the number of denylisted words.
func (p *Policy) Len() int {
	if p == nil {
		return 0
	}
	return len(p.words)
}

func (p *Policy) add(words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		p.words = append(p.words, w)
	}
}
