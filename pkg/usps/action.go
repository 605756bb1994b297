package usps

import "fmt"

// Action names one of the supported USPS operations.
type Action string

const (
	ActionTracking Action = "tracking"
	ActionLabel    Action = "label"
	ActionValidate Action = "validate"
)

// endpoint describes the API query parameter used for an action.
type endpoint struct {
	api string
	// certify marks APIs that have a sandbox variant named api+"Certify".
	certify bool
}

var endpoints = map[Action]endpoint{
	ActionTracking: {api: "TrackV2", certify: true},
	ActionLabel:    {api: "eVS", certify: true},
	ActionValidate: {api: "Verify"},
}

// ParseAction converts a string into a known Action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := endpoints[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

// apiName returns the value of the API query parameter for action.
func apiName(action Action, test bool) (string, error) {
	ep, ok := endpoints[action]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, string(action))
	}
	if test && ep.certify {
		return ep.api + "Certify", nil
	}
	return ep.api, nil
}
