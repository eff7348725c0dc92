package static

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed information.yaml
var informationYAML []byte

// Section is one tab of the rules and info page.
type Section struct {
	ID     string  `yaml:"id"`
	Label  string  `yaml:"label"`
	Blocks []Block `yaml:"blocks"`
}

type Block struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Topics     []Topic  `yaml:"topics"`
	Items      []string `yaml:"items"`
	Ordered    bool     `yaml:"ordered"`
	Link       *Link    `yaml:"link"`
}

type Topic struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type information struct {
	Sections []Section `yaml:"sections"`
}

const (
	SectionRulebook        = "rulebook"
	SectionPreviousWinners = "previous-winners"
)

var (
	infoOnce     sync.Once
	infoSections []Section
	infoErr      error
)

func parseInformation(data []byte) ([]Section, error) {
	var info information
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse information content: %w", err)
	}
	seen := make(map[string]bool, len(info.Sections))
	for _, s := range info.Sections {
		if s.ID == "" {
			return nil, fmt.Errorf("information section %q has no id", s.Label)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate information section %q", s.ID)
		}
		seen[s.ID] = true
	}
	return info.Sections, nil
}

// Information returns the info page tabs in display order. The embedded
// document is decoded once and a broken document panics, since it ships
// with the binary.
func Information() []Section {
	infoOnce.Do(func() {
		infoSections, infoErr = parseInformation(informationYAML)
	})
	if infoErr != nil {
		panic(infoErr)
	}
	out := make([]Section, len(infoSections))
	copy(out, infoSections)
	return out
}

// FindSection returns the tab with the given id, falling back to the rulebook.
func FindSection(id string) Section {
	sections := Information()
	for _, s := range sections {
		if s.ID == id {
			return s
		}
	}
	for _, s := range sections {
		if s.ID == SectionRulebook {
			return s
		}
	}
	return sections[0]
}
