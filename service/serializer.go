package service

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"mylegacyregistry/domain"
	v1 "mylegacyregistry/domain/v1"
)

// Root element (XML) and root key (JSON) of every payload kind.
const (
	RootApplications = "applications"
	RootApplication  = "application"
	RootInstance     = "instance"
	RootError        = "error"
)

// Encode serializes a v1 payload in the given media type into a single buffer.
// Supported payloads are v1.Applications, v1.Application, v1.InstanceInfo and ErrResponse.
// JSON bodies are wrapped in one root key, XML bodies use the same name as root element.
func Encode(mediaType domain.MediaType, payload any) ([]byte, error) {
	root, body, err := rootOf(payload)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case domain.MediaTypeJSON:
		return json.Marshal(map[string]any{root: body})
	case domain.MediaTypeXML:
		var buf bytes.Buffer
		buf.WriteString(xml.Header)
		enc := xml.NewEncoder(&buf)
		if err := enc.EncodeElement(body, xml.StartElement{Name: xml.Name{Local: root}}); err != nil {
			return nil, err
		}
		if err := enc.Flush(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("can't encode %T as %q", payload, mediaType)
	}
}

func rootOf(payload any) (string, any, error) {
	switch p := payload.(type) {
	case v1.Applications:
		return RootApplications, p, nil
	case v1.Application:
		return RootApplication, p, nil
	case v1.InstanceInfo:
		return RootInstance, p, nil
	case ErrResponse:
		if p.Error == nil {
			return "", nil, fmt.Errorf("error response without error")
		}
		return RootError, p.Error, nil
	default:
		return "", nil, fmt.Errorf("unsupported payload %T", payload)
	}
}
