// Package catalog provides the 57-question master data of the Brief Job
// Stress Questionnaire. The official Japanese wording ships embedded in
// the binary; substitute catalogs can be loaded from any reader, which is
// how tests inject fixtures.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lockhart9/stresscheck/internal/models"
	"github.com/lockhart9/stresscheck/internal/scoring"
)

//go:embed data/57.json
var embedded []byte

// Catalog is the immutable question master: themes with their instruction
// text, each holding blocks of ordered questions numbered 1..57. Build one
// with Load or Default and pass it to whatever needs it.
type Catalog struct {
	Themes []models.Theme `json:"simple_stress"`

	flat []models.Question
}

// Load decodes and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, theme := range c.Themes {
		for _, block := range theme.Blocks {
			c.flat = append(c.flat, block.Questions...)
		}
	}
	if err := validate(c.flat); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(questions []models.Question) error {
	if len(questions) != scoring.QuestionCount {
		return fmt.Errorf("catalog holds %d questions, want %d", len(questions), scoring.QuestionCount)
	}
	for i, q := range questions {
		if q.ID != i+1 {
			return fmt.Errorf("catalog question at position %d has id %d", i+1, q.ID)
		}
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("catalog question %d has no text", q.ID)
		}
		if len(q.Choices) == 0 {
			return fmt.Errorf("catalog question %d has no choices", q.ID)
		}
	}
	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded official catalog, decoded once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(embedded))
	})
	return defaultCatalog, defaultErr
}

// Questions returns all 57 questions in order.
func (c *Catalog) Questions() []models.Question {
	out := make([]models.Question, len(c.flat))
	copy(out, c.flat)
	return out
}

// Question returns the question with the given 1-based id, or false when
// the id is outside 1..57.
func (c *Catalog) Question(id int) (models.Question, bool) {
	if id < 1 || id > len(c.flat) {
		return models.Question{}, false
	}
	return c.flat[id-1], true
}

// At returns the question at the given 0-based position, or false when the
// position is out of range.
func (c *Catalog) At(index int) (models.Question, bool) {
	if index < 0 || index >= len(c.flat) {
		return models.Question{}, false
	}
	return c.flat[index], true
}
