package polymarket

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseEventURL extracts the event slug from a Polymarket URL such as
// https://polymarket.com/event/<slug>. Anything else yields ErrInvalidFormat.
func ParseEventURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "event" || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	return parts[1], nil
}
