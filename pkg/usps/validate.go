package usps

import (
	"fmt"

	"github.com/beevik/etree"
)

// AddressValidation asks the Verify API to standardize one address.
type AddressValidation struct {
	Address Address
}

// Action implements Request.
func (AddressValidation) Action() Action { return ActionValidate }

// Build implements Request.
func (r AddressValidation) Build(env Envelope) (*etree.Document, error) {
	if r.Address == nil {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidRequest)
	}
	doc, root := env.NewDocument("AddressValidateRequest")
	addr := root.CreateElement("Address")
	addr.CreateAttr("ID", "0")
	if err := r.Address.AddToXML(addr, "", true); err != nil {
		return nil, err
	}
	return doc, nil
}
