package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/graph"
	"github.com/leapstack-labs/gqlvis/internal/outline"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the visualized type graph",
		Long: `Export the type graph shown by the UI: object types with their degree
counts and neighbors, and every field reference between them. Links whose
target is not part of the graph are listed as dropped.`,
		Example: `  # Summary table
  gqlvis graph -o table

  # Full graph as YAML
  gqlvis graph -o yaml --endpoint ./schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd)
		},
	}
	return cmd
}

func runGraph(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	snap, err := cmdCtx.LoadSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	return renderGraph(cmdCtx.Renderer, graphOutput(snap.Endpoint, snap.Graph))
}

func edgeInfo(l *graph.Link) output.EdgeInfo {
	return output.EdgeInfo{
		Index:  l.Index,
		Source: l.Source,
		Target: l.Target,
		Name:   l.Name,
		Type:   outline.Text(l.Target, l.Modifiers),
	}
}

func graphOutput(endpoint string, g *graph.Graph) output.GraphOutput {
	inDegree := make(map[string]int, len(g.Nodes))
	for _, l := range g.Links {
		inDegree[l.Target]++
	}

	out := output.GraphOutput{
		Endpoint: endpoint,
		Nodes:    make([]output.NodeInfo, 0, len(g.Nodes)),
		Links:    make([]output.EdgeInfo, 0, len(g.Links)),
	}
	for _, n := range g.Nodes {
		neighbors := make([]string, 0, len(n.Neighbors()))
		for _, m := range n.Neighbors() {
			neighbors = append(neighbors, m.ID)
		}
		out.Nodes = append(out.Nodes, output.NodeInfo{
			ID:        n.ID,
			IsRoot:    n.IsRoot,
			OutDegree: len(g.Outgoing(n.ID)),
			InDegree:  inDegree[n.ID],
			Neighbors: neighbors,
		})
		if n.IsRoot {
			out.Summary.Roots++
		}
	}
	for _, l := range g.Links {
		out.Links = append(out.Links, edgeInfo(l))
	}
	for _, l := range g.Dropped() {
		out.Dropped = append(out.Dropped, edgeInfo(l))
	}
	out.Summary.Nodes = len(out.Nodes)
	out.Summary.Links = len(out.Links)
	out.Summary.Dropped = len(out.Dropped)
	return out
}

func renderGraph(r *output.Renderer, g output.GraphOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(g)
	case output.ModeYAML:
		return r.YAML(g)
	case output.ModeTable:
		nodes := newTable(r)
		nodes.SetTitle(fmt.Sprintf("Nodes (%d)", g.Summary.Nodes))
		nodes.AppendHeader(table.Row{"Type", "Root", "Out", "In", "Neighbors"})
		for _, n := range g.Nodes {
			nodes.AppendRow(table.Row{n.ID, n.IsRoot, n.OutDegree, n.InDegree, strings.Join(n.Neighbors, ", ")})
		}
		nodes.AppendFooter(table.Row{"", g.Summary.Roots, g.Summary.Links, g.Summary.Links, ""})
		nodes.Render()

		links := newTable(r)
		links.SetTitle(fmt.Sprintf("Links (%d)", g.Summary.Links))
		links.AppendHeader(table.Row{"#", "Source", "Field", "Target"})
		for _, l := range g.Links {
			links.AppendRow(table.Row{l.Index, l.Source, l.Name, l.Type})
		}
		links.Render()
		return nil
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Schema Graph"))
		r.Println("")
		r.Println(output.FormatKeyValue("Endpoint", g.Endpoint))
		r.Println(output.FormatKeyValue("Nodes", g.Summary.Nodes))
		r.Println(output.FormatKeyValue("Roots", g.Summary.Roots))
		r.Println(output.FormatKeyValue("Links", g.Summary.Links))
		r.Println(output.FormatKeyValue("Dropped", g.Summary.Dropped))
		r.Println("")
		r.Println(output.FormatHeader(2, "Nodes"))
		r.Println("")
		for _, n := range g.Nodes {
			r.Printf("- **%s** out=%d in=%d\n", n.ID, n.OutDegree, n.InDegree)
		}
		r.Println("")
		r.Println(output.FormatHeader(2, "Links"))
		r.Println("")
		for _, l := range g.Links {
			r.Printf("- %s.%s → %s\n", l.Source, l.Name, output.FormatCode(l.Type))
		}
		return nil
	default:
		s := r.Styles()
		r.Header(1, "Schema Graph")
		r.Printf("%d nodes, %d roots, %d links\n", g.Summary.Nodes, g.Summary.Roots, g.Summary.Links)
		if g.Summary.Dropped > 0 {
			r.Warning(fmt.Sprintf("%d links point outside the graph", g.Summary.Dropped))
		}
		for _, n := range g.Nodes {
			name := s.Type.Render(n.ID)
			if n.IsRoot {
				name = s.Root.Render(n.ID)
			}
			r.Printf("%s %s\n", name, s.Muted.Render(fmt.Sprintf("out=%d in=%d", n.OutDegree, n.InDegree)))
		}
		return nil
	}
}
