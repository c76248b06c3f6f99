package gateway

import (
	"fmt"
	"strings"
)

type Name string

const (
	Epayco      Name = "epayco"
	MercadoPago Name = "mercadopago"
	Wompi       Name = "wompi"
)

var names = []Name{Epayco, MercadoPago, Wompi}

func ParseName(raw string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range names {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGateway, raw)
}

// Label is the buyer-facing provider name.
func (n Name) Label() string {
	switch n {
	case Epayco:
		return "ePayco"
	case MercadoPago:
		return "MercadoPago"
	case Wompi:
		return "Wompi"
	default:
		return string(n)
	}
}
