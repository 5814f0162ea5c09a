package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// Writer serializes a record set into one exchange format. File handling is
// the caller's concern; writers only produce bytes.
type Writer interface {
	Write(records []EntityRecord) (string, error)
}

// NewWriter returns the writer for a format.
func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSPF:
		return &SPFWriter{schema: "IFC4"}, nil
	case FormatXML:
		return &XMLWriter{}, nil
	case FormatJSON:
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("no writer for format %q", format)
	}
}

// SPFWriter produces a STEP physical-file style listing of the record set.
type SPFWriter struct {
	schema string
	sb     strings.Builder
}

// Write renders the records. Each entity occupies one data line; fragments
// follow as relation lines referencing the entity's instance number.
func (w *SPFWriter) Write(records []EntityRecord) (string, error) {
	w.sb.Reset()
	w.writeHeader()

	step := 1
	for _, record := range records {
		entityStep := step
		w.sb.WriteString(fmt.Sprintf("#%d=ENTITY('%s','%s','%s','%s');\n",
			entityStep, record.GUID, escapeSPF(record.Name), escapeSPF(record.Category), record.ExportKind))
		step++
		for _, name := range record.PropertySets {
			w.sb.WriteString(fmt.Sprintf("#%d=PROPERTYSET('%s',#%d);\n", step, name, entityStep))
			step++
		}
		for _, name := range record.Quantities {
			w.sb.WriteString(fmt.Sprintf("#%d=QUANTITYSET('%s',#%d);\n", step, name, entityStep))
			step++
		}
		for _, fragment := range record.Fragments {
			w.sb.WriteString(fmt.Sprintf("#%d=LEVELFRAGMENT(#%d,'%s',%g,%g);\n",
				step, entityStep, escapeSPF(fragment.LevelName), fragment.Span.Start, fragment.Span.End))
			step++
		}
	}

	w.sb.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")
	return w.sb.String(), nil
}

func (w *SPFWriter) writeHeader() {
	w.sb.WriteString("ISO-10303-21;\nHEADER;\n")
	w.sb.WriteString(fmt.Sprintf("FILE_SCHEMA(('%s'));\n", w.schema))
	w.sb.WriteString("ENDSEC;\nDATA;\n")
}

// escapeSPF escapes the quote character per the STEP string rules.
func escapeSPF(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// XMLWriter produces an XML-flavored listing of the record set.
type XMLWriter struct{}

type xmlDocument struct {
	XMLName  xml.Name       `xml:"export"`
	Entities []EntityRecord `xml:"entity"`
}

// Write renders the records as an XML document.
func (w *XMLWriter) Write(records []EntityRecord) (string, error) {
	data, err := xml.MarshalIndent(xmlDocument{Entities: records}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal xml: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

// JSONWriter produces a JSON summary of the record set.
type JSONWriter struct{}

// Write renders the records as an indented JSON array.
func (w *JSONWriter) Write(records []EntityRecord) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	return string(data) + "\n", nil
}
