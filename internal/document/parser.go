package document

import (
	"fmt"
	"os"
	"path/filepath"

	"customeroptions/internal/configuration"

	"gopkg.in/yaml.v3"
)

// documentFile represents the YAML file structure
type documentFile struct {
	Messages messagesEntry  `yaml:"messages,omitempty"`
	Options  []optionEntry  `yaml:"options"`
	Products []productEntry `yaml:"products,omitempty"`
}

type messagesEntry struct {
	Range      string `yaml:"range,omitempty"`
	Uniqueness string `yaml:"uniqueness,omitempty"`
}

// optionEntry represents a single customer option in YAML
type optionEntry struct {
	Code          string                         `yaml:"code"`
	Name          string                         `yaml:"name,omitempty"`
	Type          string                         `yaml:"type,omitempty"`
	Configuration configuration.ConfigurationSet `yaml:"configuration,omitempty"`
}

// productEntry represents a single product in YAML
type productEntry struct {
	Code    string   `yaml:"code"`
	Options []string `yaml:"options,omitempty"`
}

// ParseDocument parses YAML content into a Document.
// Duplicate option references inside a product are kept; detecting them is
// the job of the uniqueness rule.
func ParseDocument(content []byte) (Document, error) {
	var df documentFile
	if err := yaml.Unmarshal(content, &df); err != nil {
		return Document{}, fmt.Errorf("invalid YAML: %w", err)
	}

	doc := Document{
		Messages: Messages{
			Range:      DefaultRangeMessage,
			Uniqueness: DefaultUniquenessMessage,
		},
		Options:  []CustomerOption{},
		Products: []Product{},
		index:    make(map[string]int),
	}
	if df.Messages.Range != "" {
		doc.Messages.Range = df.Messages.Range
	}
	if df.Messages.Uniqueness != "" {
		doc.Messages.Uniqueness = df.Messages.Uniqueness
	}

	for i, entry := range df.Options {
		if entry.Code == "" {
			return Document{}, fmt.Errorf("option at index %d: missing required field 'code'", i)
		}
		if _, dup := doc.index[entry.Code]; dup {
			return Document{}, fmt.Errorf("duplicate option code: '%s'", entry.Code)
		}

		doc.index[entry.Code] = len(doc.Options)
		doc.Options = append(doc.Options, CustomerOption{
			Code:          entry.Code,
			Name:          entry.Name,
			Type:          entry.Type,
			Configuration: entry.Configuration,
		})
	}

	for i, entry := range df.Products {
		if entry.Code == "" {
			return Document{}, fmt.Errorf("product at index %d: missing required field 'code'", i)
		}
		for _, code := range entry.Options {
			if _, ok := doc.index[code]; !ok {
				return Document{}, fmt.Errorf("product '%s': unknown option '%s'", entry.Code, code)
			}
		}

		doc.Products = append(doc.Products, Product{
			Code:    entry.Code,
			Options: entry.Options,
		})
	}

	return doc, nil
}

// ToYAML serializes a Document back to YAML bytes
func (d Document) ToYAML() ([]byte, error) {
	df := documentFile{}

	if d.Messages.Range != DefaultRangeMessage {
		df.Messages.Range = d.Messages.Range
	}
	if d.Messages.Uniqueness != DefaultUniquenessMessage {
		df.Messages.Uniqueness = d.Messages.Uniqueness
	}

	for _, o := range d.Options {
		df.Options = append(df.Options, optionEntry{
			Code:          o.Code,
			Name:          o.Name,
			Type:          o.Type,
			Configuration: o.Configuration,
		})
	}
	for _, p := range d.Products {
		df.Products = append(df.Products, productEntry{
			Code:    p.Code,
			Options: p.Options,
		})
	}

	return yaml.Marshal(&df)
}

// LoadDocument reads and parses customer-options.yaml from the given directory
func LoadDocument(dir string) (Document, error) {
	return LoadDocumentFromPath(filepath.Join(dir, DefaultFileName))
}

// LoadDocumentFromPath reads and parses a document from the given file path
func LoadDocumentFromPath(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, err
		}
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	return ParseDocument(content)
}
