package usps

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beevik/etree"
)

// ShippingLabel asks the eVS API for a prepaid shipping label.
// Service and LabelType default to DefaultService and DefaultLabelType.
type ShippingLabel struct {
	To           Address
	From         Address
	WeightOunces float64
	Service      Service
	LabelType    LabelType
}

// Action implements Request.
func (ShippingLabel) Action() Action { return ActionLabel }

// Build implements Request. The root element is eVSCertifyRequest in test
// mode and eVSRequest otherwise.
func (r ShippingLabel) Build(env Envelope) (*etree.Document, error) {
	if r.To == nil || r.From == nil {
		return nil, fmt.Errorf("%w: both to and from addresses are required", ErrInvalidRequest)
	}
	if r.WeightOunces <= 0 || math.IsInf(r.WeightOunces, 0) || math.IsNaN(r.WeightOunces) {
		return nil, fmt.Errorf("%w: weight must be a positive number of ounces", ErrInvalidRequest)
	}

	service := r.Service
	if service == "" {
		service = DefaultService
	}
	labelType := r.LabelType
	if labelType == "" {
		labelType = DefaultLabelType
	}

	rootName := "eVSRequest"
	if env.Test {
		rootName = "eVSCertifyRequest"
	}
	doc, root := env.NewDocument(rootName)

	root.CreateElement("ImageParameters").
		CreateElement("ImageParameter").
		SetText(string(labelType))

	if err := r.From.AddToXML(root, "From", false); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := r.To.AddToXML(root, "To", false); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}

	root.CreateElement("WeightInOunces").SetText(strconv.FormatFloat(r.WeightOunces, 'f', -1, 64))
	root.CreateElement("ServiceType").SetText(string(service))
	return doc, nil
}
