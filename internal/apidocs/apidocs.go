// Package apidocs reads Swagger/OpenAPI YAML documents and checks them for
// backward compatibility and route coverage.
package apidocs

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var supportedMethods = map[string]struct{}{
	"get":     {},
	"put":     {},
	"post":    {},
	"delete":  {},
	"patch":   {},
	"head":    {},
	"options": {},
}

// Operation is one documented method on a route.
type Operation struct {
	Responses map[string]struct{}
}

// Spec holds the documented operations keyed by the route the server serves
// them on, in Fiber notation: the base path is applied and {param} segments
// are written :param, so /posts/{id} under basePath /api is /api/posts/:id.
type Spec struct {
	BasePath string
	Routes   map[string]map[string]Operation
}

// Endpoint is a served route in Fiber notation, e.g. GET /api/posts/:id.
type Endpoint struct {
	Method string
	Path   string
}

// document is the part of a Swagger 2.0 or OpenAPI 3 file the checks read.
type document struct {
	BasePath string `yaml:"basePath"`
	Servers  []struct {
		URL string `yaml:"url"`
	} `yaml:"servers"`
	Paths yaml.Node `yaml:"paths"`
}

// Load reads and parses the document at path.
func Load(path string) (Spec, error) {
	// #nosec G304: path comes from CLI flags in a dev tool
	raw, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}
	return Parse(raw)
}

// Parse parses a Swagger 2.0 or OpenAPI 3 document. JSON input is accepted too.
// The base path comes from basePath, or from the first server URL in OpenAPI 3.
func Parse(raw []byte) (Spec, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Spec{}, err
	}

	switch doc.Paths.Kind {
	case 0:
		return Spec{}, errors.New("missing top-level paths field")
	case yaml.MappingNode:
	default:
		return Spec{}, errors.New("paths is not an object")
	}

	spec := Spec{
		BasePath: basePathOf(doc),
		Routes:   make(map[string]map[string]Operation),
	}

	eachPair(&doc.Paths, func(docPath string, item *yaml.Node) {
		if item.Kind != yaml.MappingNode {
			return
		}

		ops := make(map[string]Operation)
		eachPair(item, func(key string, op *yaml.Node) {
			method := strings.ToLower(strings.TrimSpace(key))
			if _, ok := supportedMethods[method]; !ok || op.Kind != yaml.MappingNode {
				return
			}
			ops[method] = Operation{Responses: responseCodes(op)}
		})

		if len(ops) > 0 {
			spec.Routes[Route(spec.BasePath, docPath)] = ops
		}
	})

	return spec, nil
}

func basePathOf(doc document) string {
	bp := doc.BasePath
	if bp == "" && len(doc.Servers) > 0 {
		if u, err := url.Parse(doc.Servers[0].URL); err == nil {
			bp = u.Path
		}
	}
	return strings.TrimRight(bp, "/")
}

func responseCodes(op *yaml.Node) map[string]struct{} {
	codes := make(map[string]struct{})
	eachPair(op, func(key string, v *yaml.Node) {
		if key != "responses" || v.Kind != yaml.MappingNode {
			return
		}
		eachPair(v, func(code string, _ *yaml.Node) {
			if c := strings.ToLower(strings.TrimSpace(code)); c != "" {
				codes[c] = struct{}{}
			}
		})
	})
	return codes
}

// eachPair walks the key/value pairs of a mapping node.
func eachPair(n *yaml.Node, fn func(key string, value *yaml.Node)) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		fn(n.Content[i].Value, n.Content[i+1])
	}
}

// Route joins a document path onto the base path and rewrites {param}
// segments as :param.
func Route(basePath, docPath string) string {
	segments := strings.Split(docPath, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = ":" + seg[1:len(seg)-1]
		}
	}
	return basePath + strings.Join(segments, "/")
}

// Compare lists what revision removed from base: routes, operations and
// response codes. Additions are compatible and not reported. A changed base
// path moves every route, so each one is reported as removed.
func Compare(base, revision Spec) []string {
	var issues []string

	for route, baseOps := range base.Routes {
		revOps, ok := revision.Routes[route]
		if !ok {
			issues = append(issues, fmt.Sprintf("removed path: %s", route))
			continue
		}

		for method, baseOp := range baseOps {
			revOp, ok := revOps[method]
			if !ok {
				issues = append(issues, fmt.Sprintf("removed operation: %s %s", strings.ToUpper(method), route))
				continue
			}

			for code := range baseOp.Responses {
				if _, ok := revOp.Responses[code]; !ok {
					issues = append(issues, fmt.Sprintf(
						"removed response code: %s %s -> %s",
						strings.ToUpper(method), route, strings.ToUpper(code),
					))
				}
			}
		}
	}

	sort.Strings(issues)
	return issues
}

// Missing reports served endpoints the document does not describe. An
// optional :param? segment matches the documented {param}.
func Missing(spec Spec, endpoints []Endpoint) []string {
	var missing []string
	for _, e := range endpoints {
		method := strings.ToLower(e.Method)
		if _, ok := spec.Routes[strings.ReplaceAll(e.Path, "?", "")][method]; !ok {
			missing = append(missing, fmt.Sprintf("%s %s", strings.ToUpper(method), e.Path))
		}
	}
	sort.Strings(missing)
	return missing
}
