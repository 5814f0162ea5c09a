// Package export turns a building model into exchange-format entity
// records: it filters elements, attaches property-set and quantity
// descriptions per profile, splits vertically-extended elements at
// building-story boundaries, and serializes the result.
package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatSPF produces a STEP physical-file style listing (.ifc).
	FormatSPF Format = "spf"

	// FormatXML produces an XML-flavored listing (.ifcxml).
	FormatXML Format = "xml"

	// FormatJSON produces a JSON summary (.json).
	FormatJSON Format = "json"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatSPF: {
		Name:        FormatSPF,
		MIMEType:    "application/x-step",
		Extension:   ".ifc",
		Description: "STEP physical file",
	},
	FormatXML: {
		Name:        FormatXML,
		MIMEType:    "application/xml",
		Extension:   ".ifcxml",
		Description: "XML serialization",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON export summary",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatNames returns all format identifiers, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// ParseFormat resolves a user-supplied format name, accepting the common
// extension spellings.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spf", "ifc", "step":
		return FormatSPF, nil
	case "xml", "ifcxml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (have: %s)", s, strings.Join(FormatNames(), ", "))
	}
}
