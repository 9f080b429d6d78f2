package types

import (
	"fmt"
	"strings"
)

// Kind discriminates the transport variants.
type Kind string

// Transport kinds. KindTransport is the generic kind with no payload.
const (
	KindTransport Kind = "transport"
	KindAirplane  Kind = "airplane"
	KindCar       Kind = "car"
	KindShip      Kind = "ship"
)

// Kinds lists every kind in menu order.
var Kinds = []Kind{KindTransport, KindAirplane, KindCar, KindShip}

var kindTitles = map[Kind]string{
	KindTransport: "Transport",
	KindAirplane:  "Airplane",
	KindCar:       "Car",
	KindShip:      "Ship",
}

// Title returns the display name of the kind.
func (k Kind) Title() string {
	if t, ok := kindTitles[k]; ok {
		return t
	}
	return string(k)
}

// ParseKind accepts a kind name (case-insensitive) or its 1-based position
// in Kinds.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, k := range Kinds {
		if s == string(k) || s == fmt.Sprint(i+1) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
