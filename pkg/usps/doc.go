// Package usps is a client for the USPS Web Tools API.
//
// It supports three operations: address validation (Verify), package
// tracking (TrackV2) and shipping label creation (eVS). Each operation builds
// an XML request document, sends it with a single HTTP GET and decodes the
// XML reply into an ordered, schema-less xmlmap.Value.
//
// # Usage
//
//	client, err := usps.New(usps.Config{UserID: "123EXAMPLE"})
//	if err != nil {
//	    return err
//	}
//
//	result, err := client.Track(ctx, "9400111699000367046792")
//	var apiErr *usps.APIError
//	if errors.As(err, &apiErr) {
//	    // the service rejected the request; apiErr.Error() is its description
//	}
//
// Setting Config.Test switches the tracking and label APIs to their Certify
// (sandbox) variants and pretty-prints request XML.
//
// # Custom requests
//
// Every operation is a Request. Client.Do builds, sends and returns the
// decoded reply, so new request shapes only need to implement Build:
//
//	result, err := client.Do(ctx, usps.Tracking{Number: "9400111699000367046792"})
package usps
