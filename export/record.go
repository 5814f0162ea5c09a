package export

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"

	"github.com/stratobim/ifcexport/model"
)

// guidNamespace anchors the deterministic element GUIDs. Exporting the same
// model twice must yield identical GUIDs, so they derive from the element
// identity instead of being random.
var guidNamespace = uuid.MustParse("8a3cf2b1-55d4-4c5e-9b0e-2f6a7d8e1c43")

// GUIDForElement derives the stable exchange GUID for an element, in the
// 22-character base-64 encoding exchange files use.
func GUIDForElement(id model.ID) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	return compressGUID(uuid.NewSHA1(guidNamespace, buf[:]))
}

// guidChars is the 64-character alphabet of the compressed GUID encoding.
const guidChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// compressGUID packs the 128-bit UUID into 22 characters, 6 bits at a time
// with a leading 2-bit group.
func compressGUID(u uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(22)

	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])

	sb.WriteByte(guidChars[hi>>62])
	hi = hi << 2
	for i := 0; i < 10; i++ {
		sb.WriteByte(guidChars[hi>>58])
		hi <<= 6
	}
	// The last 2 bits of the high word join the low word's top 4 bits.
	head := (binary.BigEndian.Uint64(u[:8])&0x3)<<4 | lo>>60
	sb.WriteByte(guidChars[head])
	lo <<= 4
	for i := 0; i < 10; i++ {
		sb.WriteByte(guidChars[lo>>58])
		lo <<= 6
	}
	return sb.String()
}

// Fragment is one level-aligned piece of a split element.
type Fragment struct {
	LevelID   model.ID           `json:"level_id"`
	LevelName string             `json:"level_name"`
	Span      model.VerticalSpan `json:"span"`
}

// EntityRecord is the exchange-format description of one element: its
// stable GUID, classification, the names of the descriptive tables that
// apply to it, and its level fragments when the element splits by story.
type EntityRecord struct {
	GUID         string           `json:"guid"`
	ElementID    model.ID         `json:"element_id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	ExportKind   model.ExportKind `json:"export_kind"`
	PropertySets []string         `json:"property_sets,omitempty"`
	Quantities   []string         `json:"quantities,omitempty"`
	Fragments    []Fragment       `json:"fragments,omitempty"`
}

// GeometrySplitter consumes the level fragments of one element to drive
// solid splitting. Geometry handling itself stays outside this module.
type GeometrySplitter interface {
	SplitByRanges(e model.Element, levelIDs []model.ID, ranges []model.VerticalSpan) error
}
