package interfaces

import "mylegacyregistry/domain"

// RouteMatcher maps a request path to a v1 query operation and its parameters.
// Implemented by service.routeMatcher. Called from handlers.ServerInterfaceWrapper before anything else.
//
//go:generate moq -stub -out mock/route_matcher.go -pkg mock . RouteMatcher
type RouteMatcher interface {
	// Match resolves the escaped request path (including the root prefix).
	// Returns:
	// 1) (query, nil) for one of the seven v1 shapes;
	// 2) bad_parameter when a shape matches but a parameter segment is empty or badly escaped;
	// 3) entity_not_found when no shape matches.
	Match(escapedPath string) (domain.Query, error)
}
