package cliconfig

import (
	"bytes"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/uspsship/pkg/usps"
)

// AddressFile is an address table in a shipment file.
type AddressFile struct {
	Name   string `toml:"name"`
	Firm   string `toml:"firm"`
	Street string `toml:"street"`
	Unit   string `toml:"unit"`
	City   string `toml:"city"`
	State  string `toml:"state"`
	Zip5   string `toml:"zip5"`
	Zip4   string `toml:"zip4"`
	Phone  string `toml:"phone"`
}

// Address converts the table into a usps.StandardAddress.
func (a AddressFile) Address() usps.StandardAddress {
	return usps.StandardAddress{
		Name:   a.Name,
		Firm:   a.Firm,
		Street: a.Street,
		Unit:   a.Unit,
		City:   a.City,
		State:  a.State,
		Zip5:   a.Zip5,
		Zip4:   a.Zip4,
		Phone:  a.Phone,
	}
}

// ShipmentFile describes a label request:
//
//	weight_ounces = 16
//	service = "PRIORITY"
//
//	[from]
//	name = "Tobin Brown"
//	street = "1600 Pennsylvania Ave NW"
//	zip5 = "20500"
//
//	[to]
//	...
type ShipmentFile struct {
	WeightOunces float64     `toml:"weight_ounces"`
	Service      string      `toml:"service"`
	LabelType    string      `toml:"label_type"`
	From         AddressFile `toml:"from"`
	To           AddressFile `toml:"to"`
}

// LoadShipmentFile reads a shipment description. Unknown keys are rejected
// so that typos in address fields do not silently drop data.
func LoadShipmentFile(path string) (ShipmentFile, error) {
	var sf ShipmentFile
	b, err := os.ReadFile(path)
	if err != nil {
		return sf, err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sf); err != nil {
		return sf, fmt.Errorf("parse shipment %s: %w", path, err)
	}
	return sf, nil
}

// Label converts the shipment into a label request.
func (s ShipmentFile) Label() usps.ShippingLabel {
	return usps.ShippingLabel{
		From:         s.From.Address(),
		To:           s.To.Address(),
		WeightOunces: s.WeightOunces,
		Service:      usps.Service(s.Service),
		LabelType:    usps.LabelType(s.LabelType),
	}
}
