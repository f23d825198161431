package service

import (
	"fmt"
	"strings"

	"mylegacyregistry/domain"

	"github.com/munnerz/goautoneg"
)

// negotiator implements interfaces.Negotiator for a fixed list of supported media types.
//
// A header equal to a supported type selects it as is. Any other header is parsed as a list of
// media ranges ordered by q-value; the first concrete range with q > 0 naming a supported type
// wins. Wildcards never select: the caller has to name the type it wants.
type negotiator struct {
	supported []domain.MediaType
}

// NewNegotiator creates a negotiator for the given media types. Panics when none are given.
func NewNegotiator(supported ...domain.MediaType) *negotiator {
	if len(supported) == 0 {
		panic("service.negotiator.go: at least one media type is required")
	}
	return &negotiator{supported: append([]domain.MediaType(nil), supported...)}
}

func (n *negotiator) Negotiate(accept string) (domain.MediaType, error) {
	for _, mt := range n.supported {
		if accept == string(mt) {
			return mt, nil
		}
	}

	if strings.TrimSpace(accept) == "" {
		return "", NewUnsupportedMediaTypeError(fmt.Sprintf("Accept header is required, supported: %s", n), nil)
	}

	for _, clause := range goautoneg.ParseAccept(accept) {
		if clause.Q <= 0 || clause.Type == "*" || clause.SubType == "*" {
			continue
		}
		for _, mt := range n.supported {
			if strings.EqualFold(clause.Type+"/"+clause.SubType, string(mt)) {
				return mt, nil
			}
		}
	}

	return "", NewUnsupportedMediaTypeError(fmt.Sprintf("unsupported Accept %q, supported: %s", accept, n), nil)
}

func (n *negotiator) String() string {
	names := make([]string, len(n.supported))
	for i, mt := range n.supported {
		names[i] = string(mt)
	}
	return strings.Join(names, ", ")
}
