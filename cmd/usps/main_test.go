package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateEnv keeps the developer's config file and USPS_* variables out of
// the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"USPS_USER_ID", "USPS_TEST", "USPS_SERVICE_URL", "USPS_HTTP_TIMEOUT", "USPS_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

type served struct {
	api string
	xml string
}

func newServer(t *testing.T, reply string) (*httptest.Server, *served) {
	t.Helper()
	s := &served{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.api = r.URL.Query().Get("API")
		s.xml = r.URL.Query().Get("XML")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, s
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTrackCommand(t *testing.T) {
	isolateEnv(t)
	srv, s := newServer(t, `<TrackResponse><TrackInfo ID="9400111699000367046792"><TrackSummary>Delivered</TrackSummary></TrackInfo></TrackResponse>`)

	out, err := run(t, "--user-id", "123EXAMPLE", "--service-url", srv.URL, "track", "9400111699000367046792")
	if err != nil {
		t.Fatalf("track: %v", err)
	}

	if s.api != "TrackV2" {
		t.Errorf("API = %q, want TrackV2", s.api)
	}
	if !strings.Contains(s.xml, `USERID="123EXAMPLE"`) {
		t.Errorf("request XML missing USERID: %q", s.xml)
	}

	var decoded map[string]map[string]map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got := decoded["TrackResponse"]["TrackInfo"]["TrackSummary"]; got != "Delivered" {
		t.Errorf("TrackSummary = %q, want Delivered", got)
	}
}

func TestValidateCommand_UsesEnvUserID(t *testing.T) {
	isolateEnv(t)
	t.Setenv("USPS_USER_ID", "ENVUSER")
	srv, s := newServer(t, `<AddressValidateResponse><Address ID="0"><Address2>1600 PENNSYLVANIA AVE NW</Address2></Address></AddressValidateResponse>`)

	out, err := run(t, "--service-url", srv.URL, "validate", "--street", "1600 Pennsylvania Ave NW", "--zip5", "20500")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if s.api != "Verify" {
		t.Errorf("API = %q, want Verify", s.api)
	}
	if !strings.Contains(s.xml, `<AddressValidateRequest USERID="ENVUSER"><Address ID="0">`) {
		t.Errorf("unexpected request XML %q", s.xml)
	}
	if !strings.Contains(out, "1600 PENNSYLVANIA AVE NW") {
		t.Errorf("output missing standardized address: %s", out)
	}
}

func TestLabelCommand_TestMode(t *testing.T) {
	isolateEnv(t)
	srv, s := newServer(t, `<eVSCertifyResponse><BarcodeNumber>420</BarcodeNumber></eVSCertifyResponse>`)

	shipment := filepath.Join(t.TempDir(), "shipment.toml")
	content := `
weight_ounces = 8

[from]
name = "Tobin Brown"
street = "1600 Pennsylvania Ave NW"
zip5 = "20500"

[to]
name = "Jane Doe"
street = "1 Main St"
zip5 = "68102"
`
	if err := os.WriteFile(shipment, []byte(content), 0o600); err != nil {
		t.Fatalf("write shipment: %v", err)
	}

	out, err := run(t, "--user-id", "u", "--test", "--service-url", srv.URL, "label", "--shipment", shipment, "--weight", "16")
	if err != nil {
		t.Fatalf("label: %v", err)
	}

	if s.api != "eVSCertify" {
		t.Errorf("API = %q, want eVSCertify", s.api)
	}
	for _, want := range []string{"<eVSCertifyRequest", "<WeightInOunces>16</WeightInOunces>", "<ServiceType>PRIORITY</ServiceType>", "<ImageParameter>ZPLII</ImageParameter>"} {
		if !strings.Contains(s.xml, want) {
			t.Errorf("request XML missing %s:\n%s", want, s.xml)
		}
	}
	if !strings.Contains(out, `"BarcodeNumber": "420"`) {
		t.Errorf("unexpected output %s", out)
	}
}

func TestServiceErrorIsReturned(t *testing.T) {
	isolateEnv(t)
	srv, _ := newServer(t, `<Error><Description>Invalid Zip Code</Description></Error>`)

	_, err := run(t, "--user-id", "u", "--service-url", srv.URL, "validate", "--street", "1 Main St", "--zip5", "99999")
	if err == nil || err.Error() != "Invalid Zip Code" {
		t.Errorf("error = %v, want Invalid Zip Code", err)
	}
}

func TestMissingUserID(t *testing.T) {
	isolateEnv(t)

	_, err := run(t, "track", "1")
	if err == nil || !strings.Contains(err.Error(), "user-id is required") {
		t.Errorf("error = %v, want user-id is required", err)
	}
}

func TestConfigFile(t *testing.T) {
	isolateEnv(t)
	srv, s := newServer(t, `<TrackResponse/>`)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "user_id = \"FILEUSER\"\nservice_url = \"" + srv.URL + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := run(t, "--config", cfgPath, "track", "1"); err != nil {
		t.Fatalf("track: %v", err)
	}
	if !strings.Contains(s.xml, `USERID="FILEUSER"`) {
		t.Errorf("config file user id not used: %q", s.xml)
	}

	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "track", "1"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
