package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var builtinYAML []byte

// Catalog is an ordered, read-only question bank with an id index.
type Catalog struct {
	questions []Question
	byID      map[string]int
}

// bankFile is the on-disk shape of a question bank.
type bankFile struct {
	Questions []Question `yaml:"questions"`
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the embedded question bank. It panics if the embedded
// asset is invalid, which the package tests rule out.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := Parse(bytes.NewReader(builtinYAML))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded question bank: %v", err))
		}
		builtin = c
	})
	return builtin
}

// New validates questions and builds a catalog preserving their order.
func New(questions []Question) (*Catalog, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	c := &Catalog{
		questions: slices.Clone(questions),
		byID:      make(map[string]int, len(questions)),
	}
	for i, q := range c.questions {
		c.byID[q.ID] = i
	}
	return c, nil
}

// Parse reads a YAML question bank. Unknown fields are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f bankFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse question bank: empty document")
		}
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	return New(f.Questions)
}

// Load reads a YAML question bank from path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Lookup returns the question with the given id.
func (c *Catalog) Lookup(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Index returns the catalog position of id, or -1.
func (c *Catalog) Index(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}

// Questions returns a copy of all questions in catalog order.
func (c *Catalog) Questions() []Question {
	return slices.Clone(c.questions)
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at position i.
func (c *Catalog) At(i int) Question {
	return c.questions[i]
}

// ByCategory returns the questions of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}

// ByDimension returns the questions tagged with a dimension in catalog order.
func (c *Catalog) ByDimension(dim Subcategory) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Subcategory == dim {
			out = append(out, q)
		}
	}
	return out
}
