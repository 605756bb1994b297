package usps

import "github.com/beevik/etree"

// Request is a single USPS operation. Build produces the XML document sent
// to the API selected by Action.
type Request interface {
	Action() Action
	Build(env Envelope) (*etree.Document, error)
}

// Envelope carries the client settings a request document depends on.
type Envelope struct {
	UserID string
	Test   bool
}

// NewDocument creates a document whose root element is named root and
// carries the USERID attribute.
func (e Envelope) NewDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	el := doc.CreateElement(root)
	el.CreateAttr("USERID", e.UserID)
	return doc, el
}

var (
	_ Request = AddressValidation{}
	_ Request = Tracking{}
	_ Request = ShippingLabel{}
)
