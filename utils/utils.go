package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateFolio returns a short uppercase folio for a new certificate,
// e.g. DC3-9F1C2B7A4D3E.
func GenerateFolio() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "DC3-" + raw[:12]
}
