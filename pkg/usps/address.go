package usps

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Address serializes itself into a request document.
//
// AddToXML appends child elements named prefix+Field (for example FromName or
// ToZip5) to parent. In validate mode it must omit the fields the Verify API
// does not accept and use no prefix.
type Address interface {
	AddToXML(parent *etree.Element, prefix string, validate bool) error
}

// StandardAddress is a US domestic address.
//
// USPS numbers address lines backwards: Address1 is the secondary unit line
// and Address2 the street line. StandardAddress uses Street and Unit to keep
// the two apart.
type StandardAddress struct {
	Name   string
	Firm   string
	Street string
	Unit   string
	City   string
	State  string
	Zip5   string
	Zip4   string
	Phone  string
}

var _ Address = StandardAddress{}

// Validate checks that the address can be sent to USPS.
// A street line is required, plus either a ZIP code or a city and state.
func (a StandardAddress) Validate() error {
	if strings.TrimSpace(a.Street) == "" {
		return fmt.Errorf("%w: street is required", ErrInvalidAddress)
	}
	if a.Zip5 == "" && (a.City == "" || a.State == "") {
		return fmt.Errorf("%w: zip5 or city and state are required", ErrInvalidAddress)
	}
	if a.Zip5 != "" && !isDigits(a.Zip5, 5) {
		return fmt.Errorf("%w: zip5 %q must be 5 digits", ErrInvalidAddress, a.Zip5)
	}
	if a.Zip4 != "" && !isDigits(a.Zip4, 4) {
		return fmt.Errorf("%w: zip4 %q must be 4 digits", ErrInvalidAddress, a.Zip4)
	}
	if a.State != "" && len(a.State) != 2 {
		return fmt.Errorf("%w: state %q must be a 2-letter code", ErrInvalidAddress, a.State)
	}
	return nil
}

// AddToXML implements Address. Name and Phone are only written for labels.
// The Verify API names the firm field FirmName while eVS uses <prefix>Firm.
func (a StandardAddress) AddToXML(parent *etree.Element, prefix string, validate bool) error {
	if err := a.Validate(); err != nil {
		return err
	}

	add := func(field, value string) {
		parent.CreateElement(prefix + field).SetText(value)
	}

	if validate {
		add("FirmName", a.Firm)
	} else {
		add("Name", a.Name)
		add("Firm", a.Firm)
	}
	add("Address1", a.Unit)
	add("Address2", a.Street)
	add("City", a.City)
	add("State", a.State)
	add("Zip5", a.Zip5)
	add("Zip4", a.Zip4)
	if !validate {
		add("Phone", a.Phone)
	}
	return nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
