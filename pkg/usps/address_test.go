package usps

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

var whiteHouse = StandardAddress{
	Name:   "Tobin Brown",
	Firm:   "Acme",
	Street: "1600 Pennsylvania Ave NW",
	Unit:   "Suite 1",
	City:   "Washington",
	State:  "DC",
	Zip5:   "20500",
	Zip4:   "0003",
	Phone:  "2024561111",
}

func TestStandardAddress_AddToXML(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		validate bool
		want     []string
	}{
		{
			name:   "label fields with prefix",
			prefix: "From",
			want: []string{
				"FromName=Tobin Brown", "FromFirm=Acme", "FromAddress1=Suite 1",
				"FromAddress2=1600 Pennsylvania Ave NW", "FromCity=Washington",
				"FromState=DC", "FromZip5=20500", "FromZip4=0003", "FromPhone=2024561111",
			},
		},
		{
			name:     "validate mode omits name and phone",
			validate: true,
			want: []string{
				"FirmName=Acme", "Address1=Suite 1", "Address2=1600 Pennsylvania Ave NW",
				"City=Washington", "State=DC", "Zip5=20500", "Zip4=0003",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := etree.NewElement("Address")
			if err := whiteHouse.AddToXML(parent, tt.prefix, tt.validate); err != nil {
				t.Fatalf("AddToXML() error = %v", err)
			}

			var got []string
			for _, c := range parent.ChildElements() {
				got = append(got, c.Tag+"="+c.Text())
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("fields =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestStandardAddress_Validate(t *testing.T) {
	tests := []struct {
		name    string
		addr    StandardAddress
		wantErr bool
	}{
		{name: "complete", addr: whiteHouse},
		{name: "zip only", addr: StandardAddress{Street: "1 Main St", Zip5: "12345"}},
		{name: "city and state only", addr: StandardAddress{Street: "1 Main St", City: "Omaha", State: "NE"}},
		{name: "missing street", addr: StandardAddress{Zip5: "12345"}, wantErr: true},
		{name: "missing zip and state", addr: StandardAddress{Street: "1 Main St", City: "Omaha"}, wantErr: true},
		{name: "short zip", addr: StandardAddress{Street: "1 Main St", Zip5: "1234"}, wantErr: true},
		{name: "alpha zip4", addr: StandardAddress{Street: "1 Main St", Zip5: "12345", Zip4: "abcd"}, wantErr: true},
		{name: "long state", addr: StandardAddress{Street: "1 Main St", City: "Omaha", State: "Nebraska"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.addr.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAddress) {
					t.Errorf("Validate() error = %v, want ErrInvalidAddress", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestStandardAddress_AddToXMLRejectsInvalid(t *testing.T) {
	parent := etree.NewElement("Address")
	err := StandardAddress{City: "Omaha"}.AddToXML(parent, "To", false)
	if !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("AddToXML() error = %v, want ErrInvalidAddress", err)
	}
	if len(parent.ChildElements()) != 0 {
		t.Errorf("invalid address should not write any fields")
	}
}
