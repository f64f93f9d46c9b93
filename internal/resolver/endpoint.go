package resolver

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-column-client/models"
)

// DefaultHostname is used when the operator leaves the machine name blank.
const DefaultHostname = models.DefaultHostname

const maxPort = 65535

// EffectiveHost trims input and substitutes fallback (or DefaultHostname when
// fallback is empty too) for a blank name.
func EffectiveHost(input, fallback string) string {
	host := strings.TrimSpace(input)
	if host != "" {
		return host
	}

	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}

	return DefaultHostname
}

// ParsePort parses a decimal port number. Non-numeric or out of range input
// yields the unusable port 0, which then fails at connect time.
func ParsePort(input string) int {
	port, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || port < 0 || port > maxPort {
		return 0
	}

	return port
}

// NewEndpoint builds an Endpoint from raw operator input.
func NewEndpoint(hostInput, portInput, fallbackHost string) models.Endpoint {
	return models.Endpoint{
		Host: EffectiveHost(hostInput, fallbackHost),
		Port: ParsePort(portInput),
	}
}
