package service

import (
	"fmt"
	"net/url"
	"strings"

	"mylegacyregistry/domain"
	"mylegacyregistry/helpers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
)

// Path parameter names of the v1 API.
const (
	ParamAppName    = "appName"
	ParamInstanceID = "instanceId"
	ParamVIP        = "vip"
	ParamSecureVIP  = "secureVip"
)

// routeShape is one v1 path shape. A segment in braces is a parameter, anything else a literal.
type routeShape struct {
	operation domain.Operation
	segments  []string
}

// routeShapes in match priority: delta before the generic application shape, the
// application/instance pair before the single application.
var routeShapes = []routeShape{
	{operation: domain.OperationApplications, segments: []string{"apps"}},
	{operation: domain.OperationApplicationsDelta, segments: []string{"apps", "delta"}},
	{operation: domain.OperationApplicationInstance, segments: []string{"apps", "{" + ParamAppName + "}", "{" + ParamInstanceID + "}"}},
	{operation: domain.OperationApplication, segments: []string{"apps", "{" + ParamAppName + "}"}},
	{operation: domain.OperationApplicationsByVIP, segments: []string{"vips", "{" + ParamVIP + "}"}},
	{operation: domain.OperationApplicationsBySecureVIP, segments: []string{"svips", "{" + ParamSecureVIP + "}"}},
	{operation: domain.OperationInstance, segments: []string{"instances", "{" + ParamInstanceID + "}"}},
}

// routeMatcher implements interfaces.RouteMatcher over the fixed v1 shapes under a root prefix.
// Path parameters are declared as OpenAPI path parameters and validated against their schema.
type routeMatcher struct {
	root   string
	params map[string]*openapi3.Parameter
}

// NewRouteMatcher creates the v1 router for the given root prefix (e.g. /eureka/v2). Panics on empty root.
func NewRouteMatcher(root string) *routeMatcher {
	root = strings.TrimSuffix(helpers.StrPanic(root, "service.route_matcher.go: root is required"), "/")

	params := make(map[string]*openapi3.Parameter)
	for _, name := range []string{ParamAppName, ParamInstanceID, ParamVIP, ParamSecureVIP} {
		params[name] = openapi3.NewPathParameter(name).
			WithSchema(openapi3.NewStringSchema().WithMinLength(1))
	}

	return &routeMatcher{root: root, params: params}
}

// Match resolves an escaped request path. Segments are split before percent-decoding so an
// encoded slash stays inside its segment.
func (r *routeMatcher) Match(escapedPath string) (domain.Query, error) {
	rest, ok := strings.CutPrefix(escapedPath, r.root+"/")
	if !ok {
		return domain.Query{}, NewEntityNotFoundError(fmt.Sprintf("no v1 resource at %q", escapedPath), nil)
	}

	raw := strings.Split(rest, "/")
	segments := make([]string, len(raw))
	for i, s := range raw {
		decoded, err := url.PathUnescape(s)
		if err != nil {
			return domain.Query{}, NewBadParameterError(fmt.Sprintf("malformed path segment %q", s), err)
		}
		segments[i] = decoded
	}

	for _, shape := range routeShapes {
		values, ok := shape.match(segments)
		if !ok {
			continue
		}
		if err := r.validate(values); err != nil {
			return domain.Query{}, err
		}
		return toQuery(shape.operation, values), nil
	}

	return domain.Query{}, NewEntityNotFoundError(fmt.Sprintf("no v1 resource at %q", escapedPath), nil)
}

func (s routeShape) match(segments []string) (map[string]string, bool) {
	if len(segments) != len(s.segments) {
		return nil, false
	}
	values := make(map[string]string)
	for i, want := range s.segments {
		if name, ok := paramName(want); ok {
			values[name] = segments[i]
			continue
		}
		if segments[i] != want {
			return nil, false
		}
	}
	return values, true
}

func (r *routeMatcher) validate(values map[string]string) error {
	for name, value := range values {
		param := r.params[name]
		if err := param.Schema.Value.VisitJSON(value); err != nil {
			return NewBadParameterError(
				fmt.Sprintf("invalid path parameter %q", name),
				&openapi3filter.RequestError{Parameter: param, Reason: "path segment is empty", Err: err},
			)
		}
	}
	return nil
}

func paramName(segment string) (string, bool) {
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}

func toQuery(op domain.Operation, values map[string]string) domain.Query {
	q := domain.Query{
		Operation:  op,
		AppName:    values[ParamAppName],
		InstanceID: values[ParamInstanceID],
		VIP:        values[ParamVIP],
	}
	if op == domain.OperationApplicationsBySecureVIP {
		q.VIP = values[ParamSecureVIP]
	}
	return q
}
