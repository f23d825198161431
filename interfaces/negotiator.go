package interfaces

import "mylegacyregistry/domain"

// Negotiator selects the response media type from an Accept header.
//
//go:generate moq -stub -out mock/negotiator.go -pkg mock . Negotiator
type Negotiator interface {
	// Negotiate returns one of the supported media types, or unsupported_media_type when the header is
	// missing or names none of them.
	Negotiate(accept string) (domain.MediaType, error)
}
