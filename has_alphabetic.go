package oasmodel

import (
	"github.com/Gobd/oasmodel/model"
)

type hasAlphabetic struct {
	isCreditCardNumberCheck bool
}

// HasAlphabetic returns a rule documenting that a string contains at least
// one alphabetic character.
func HasAlphabetic() Rule {
	return hasAlphabetic{}
}

// NonCreditCardNumber returns a rule documenting that a string must not look
// like a credit card number.
func NonCreditCardNumber() Rule {
	return hasAlphabetic{isCreditCardNumberCheck: true}
}

func (r hasAlphabetic) Describe(name string, parent, prop *model.Schema) error {
	if r.isCreditCardNumberCheck {
		return Describe("Must not be a credit card number.").Describe(name, parent, prop)
	}
	return Describe("Must contain at least one alphabetic character.").Describe(name, parent, prop)
}
