package document

import (
	"customeroptions/internal/association"
	"customeroptions/internal/configuration"
)

const (
	// DefaultFileName is the document looked up when no path is given.
	DefaultFileName = "customer-options.yaml"

	DefaultRangeMessage      = "brille24.form.config.min.greater.max"
	DefaultUniquenessMessage = "brille24.form.customer_options.unique"
)

// Messages holds the constraint message templates used for each rule.
type Messages struct {
	Range      string
	Uniqueness string
}

// CustomerOption is a selectable product customization.
type CustomerOption struct {
	Code          string
	Name          string
	Type          string // e.g., "text", "number", "select"
	Configuration configuration.ConfigurationSet
}

// Product references customer options by code, in order.
type Product struct {
	Code    string
	Options []string
}

// Document is a catalogue of customer options and products.
type Document struct {
	Messages Messages
	Options  []CustomerOption
	Products []Product

	index map[string]int // option code -> position in Options
}

// Option returns the customer option with the given code.
func (d Document) Option(code string) (CustomerOption, bool) {
	if d.index != nil {
		if i, ok := d.index[code]; ok {
			return d.Options[i], true
		}
		return CustomerOption{}, false
	}
	for _, o := range d.Options {
		if o.Code == code {
			return o, true
		}
	}
	return CustomerOption{}, false
}

// Associations builds the product's option associations in reference order.
// Unknown codes yield an association with only the code set.
func (d Document) Associations(p Product) []association.OptionAssociation {
	result := make([]association.OptionAssociation, len(p.Options))
	for i, code := range p.Options {
		opt := association.Option{Code: code}
		if o, ok := d.Option(code); ok {
			opt.Name = o.Name
		}
		result[i] = association.OptionAssociation{Option: opt, Position: i}
	}
	return result
}
