package output

// Machine-readable shapes of command results. Field names are identical in
// JSON and YAML.

// LinkInfo is one outgoing reference of a type.
type LinkInfo struct {
	Field  string `json:"field" yaml:"field"`
	Target string `json:"target" yaml:"target"`
	Type   string `json:"type" yaml:"type"`
}

// TypeInfo is one type of the outline listing.
type TypeInfo struct {
	ID     string     `json:"id" yaml:"id"`
	IsRoot bool       `json:"isRoot" yaml:"isRoot"`
	Links  []LinkInfo `json:"links" yaml:"links"`
}

// ListingOutput is the outline listing.
type ListingOutput struct {
	Endpoint string     `json:"endpoint" yaml:"endpoint"`
	Types    []TypeInfo `json:"types" yaml:"types"`
}

// FieldInfo is one field of a type.
type FieldInfo struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Target     string `json:"target" yaml:"target"`
	Selectable bool   `json:"selectable" yaml:"selectable"`
}

// DetailOutput is the field view of one type.
type DetailOutput struct {
	Endpoint string      `json:"endpoint" yaml:"endpoint"`
	ID       string      `json:"id" yaml:"id"`
	IsRoot   bool        `json:"isRoot" yaml:"isRoot"`
	Fields   []FieldInfo `json:"fields" yaml:"fields"`
}

// NodeInfo is a node of the exported graph with its degree counts.
type NodeInfo struct {
	ID        string   `json:"id" yaml:"id"`
	IsRoot    bool     `json:"isRoot" yaml:"isRoot"`
	OutDegree int      `json:"outDegree" yaml:"outDegree"`
	InDegree  int      `json:"inDegree" yaml:"inDegree"`
	Neighbors []string `json:"neighbors" yaml:"neighbors"`
}

// EdgeInfo is a link of the exported graph.
type EdgeInfo struct {
	Index  int    `json:"index" yaml:"index"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
}

// GraphSummary counts the exported graph.
type GraphSummary struct {
	Nodes   int `json:"nodes" yaml:"nodes"`
	Links   int `json:"links" yaml:"links"`
	Roots   int `json:"roots" yaml:"roots"`
	Dropped int `json:"dropped" yaml:"dropped"`
}

// GraphOutput is the exported graph.
type GraphOutput struct {
	Endpoint string       `json:"endpoint" yaml:"endpoint"`
	Summary  GraphSummary `json:"summary" yaml:"summary"`
	Nodes    []NodeInfo   `json:"nodes" yaml:"nodes"`
	Links    []EdgeInfo   `json:"links" yaml:"links"`
	Dropped  []EdgeInfo   `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}
