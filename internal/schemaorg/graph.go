package schemaorg

import (
	"reflect"

	json "github.com/goccy/go-json"
)

type graphDocument struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}

// CompactNodes drops nil entries (including typed nil pointers from node
// builders) so omitted nodes never reach the serialized graph.
func CompactNodes(nodes []any) []any {
	compacted := make([]any, 0, len(nodes))
	for _, node := range nodes {
		if isNilNode(node) {
			continue
		}
		compacted = append(compacted, node)
	}
	return compacted
}

// Graph serializes the nodes as a single @graph document suitable for a
// <script type="application/ld+json"> block.
func Graph(nodes []any) ([]byte, error) {
	return json.Marshal(graphDocument{Context: Context, Graph: CompactNodes(nodes)})
}

func isNilNode(node any) bool {
	if node == nil {
		return true
	}
	value := reflect.ValueOf(node)
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return value.IsNil()
	default:
		return false
	}
}
