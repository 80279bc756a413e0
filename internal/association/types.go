package association

// HasOptionCode is implemented by anything linked to a customer option.
type HasOptionCode interface {
	OptionCode() string
}

// Option is the customer option referenced by an association.
type Option struct {
	Code string
	Name string
}

// OptionAssociation links a product to a customer option.
type OptionAssociation struct {
	Option   Option
	Position int
}

// OptionCode implements HasOptionCode.
func (a OptionAssociation) OptionCode() string {
	return a.Option.Code
}
