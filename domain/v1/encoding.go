package v1

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Port is a legacy port: JSON {"$":8080,"@enabled":"true"}, XML <port enabled="true">8080</port>.
type Port struct {
	Value   int  `xml:",chardata"`
	Enabled bool `xml:"enabled,attr"`
}

type jsonPort struct {
	Value   int    `json:"$"`
	Enabled string `json:"@enabled"`
}

func (p Port) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPort{Value: p.Value, Enabled: strconv.FormatBool(p.Enabled)})
}

func (p *Port) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value   json.Number     `json:"$"`
		Enabled json.RawMessage `json:"@enabled"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	value, err := raw.Value.Int64()
	if err != nil {
		return fmt.Errorf("invalid port value %q: %w", raw.Value, err)
	}
	p.Value = int(value)

	// Older clients send the flag as a bare boolean.
	var enabled any
	if len(raw.Enabled) > 0 {
		if err := json.Unmarshal(raw.Enabled, &enabled); err != nil {
			return err
		}
	}
	switch e := enabled.(type) {
	case bool:
		p.Enabled = e
	case string:
		p.Enabled, err = strconv.ParseBool(e)
		if err != nil {
			return fmt.Errorf("invalid port @enabled %q: %w", e, err)
		}
	default:
		p.Enabled = false
	}
	return nil
}

// Metadata is a free-form key-value map. In XML every key becomes a child element, in key order.
// Keys that are not plain XML names are escaped, see EscapeXMLName.
type Metadata map[string]string

func (m Metadata) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := e.EncodeElement(m[k], xml.StartElement{Name: xml.Name{Local: EscapeXMLName(k)}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func (m *Metadata) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	out := Metadata{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			out[UnescapeXMLName(t.Name.Local)] = value
		case xml.EndElement:
			*m = out
			return nil
		}
	}
}

const emptyXMLName = "_"

// EscapeXMLName turns an arbitrary key into a valid XML element name. ASCII letters pass through,
// as do digits, '-' and '.' after the first position. "_" becomes "__" and "$" becomes "_-",
// matching the legacy XML codec. Any other rune becomes "_x<hex>_". The empty key is "_".
func EscapeXMLName(name string) string {
	if name == "" {
		return emptyXMLName
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_':
			b.WriteString("__")
		case r == '$':
			b.WriteString("_-")
		case isASCIILetter(r), i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "_x%x_", r)
		}
	}
	return b.String()
}

// UnescapeXMLName reverses EscapeXMLName. Names carrying a malformed escape are returned as is.
func UnescapeXMLName(name string) string {
	if name == emptyXMLName {
		return ""
	}
	if !strings.Contains(name, "_") {
		return name
	}
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] != '_' {
			b.WriteByte(name[i])
			continue
		}
		if i+1 >= len(name) {
			return name
		}
		switch name[i+1] {
		case '_':
			b.WriteByte('_')
			i++
		case '-':
			b.WriteByte('$')
			i++
		case 'x':
			end := strings.IndexByte(name[i+2:], '_')
			if end <= 0 {
				return name
			}
			code, err := strconv.ParseUint(name[i+2:i+2+end], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return name
			}
			b.WriteRune(rune(code))
			i += 2 + end
		default:
			return name
		}
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
