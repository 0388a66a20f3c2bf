package ast

// Exported is a plain representation of a node, suitable for JSON and YAML
// encoders.
type Exported struct {
	Type     string     `json:"type" yaml:"type"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
	Start    int        `json:"start" yaml:"start"`
	End      int        `json:"end" yaml:"end"`
	Children []Exported `json:"children,omitempty" yaml:"children,omitempty"`
}

// Export converts the given nodes into their plain representation
func Export(nodes []Node) []Exported {
	exported := make([]Exported, 0, len(nodes))
	for i := range nodes {
		exported = append(exported, exportNode(nodes[i]))
	}
	return exported
}

func exportNode(n Node) Exported {
	span := n.Span()

	e := Exported{
		Start: span.Start,
		End:   span.End,
	}

	switch n := n.(type) {
	case *SequenceNode:
		e.Type = n.Kind.String()
		e.Children = Export(n.Children)
	case *SymbolNode:
		e.Type = "symbol"
		if n.IsString() {
			e.Type = "string"
		}
		e.Text = n.Text()
	}

	return e
}
