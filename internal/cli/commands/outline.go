package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/outline"
)

// NewOutlineCommand creates the outline command.
func NewOutlineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline [type]",
		Short: "Print the type outline of a schema",
		Long: `Print every object type of the schema with its outgoing references, or the
fields of a single type when one is named.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml, table`,
		Example: `  # Outline the configured endpoint
  gqlvis outline

  # Fields of one type from a saved introspection response
  gqlvis outline Ship --endpoint ./schema.json

  # As JSON
  gqlvis outline -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args)
		},
	}
	return cmd
}

func runOutline(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	snap, err := cmdCtx.LoadSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	o := snap.Outline()
	r := cmdCtx.Renderer

	if len(args) == 0 {
		return renderListing(r, listingOutput(snap.Endpoint, o.Listing()))
	}

	d, ok := o.Detail(args[0])
	if !ok {
		return fmt.Errorf("type %q not found in schema", args[0])
	}
	return renderDetail(r, detailOutput(snap.Endpoint, d))
}

func listingOutput(endpoint string, entries []outline.Entry) output.ListingOutput {
	out := output.ListingOutput{Endpoint: endpoint, Types: make([]output.TypeInfo, 0, len(entries))}
	for _, e := range entries {
		t := output.TypeInfo{ID: e.ID, IsRoot: e.IsRoot, Links: make([]output.LinkInfo, 0, len(e.Links))}
		for _, l := range e.Links {
			t.Links = append(t.Links, output.LinkInfo{
				Field:  l.Field,
				Target: l.Target,
				Type:   outline.Text(l.Target, l.Modifiers),
			})
		}
		out.Types = append(out.Types, t)
	}
	return out
}

func detailOutput(endpoint string, d outline.Detail) output.DetailOutput {
	out := output.DetailOutput{Endpoint: endpoint, ID: d.ID, IsRoot: d.IsRoot, Fields: make([]output.FieldInfo, 0, len(d.Fields))}
	for _, f := range d.Fields {
		out.Fields = append(out.Fields, output.FieldInfo{
			Name:       f.Name,
			Type:       outline.Text(f.Type, f.Modifiers),
			Target:     f.Type,
			Selectable: f.Selectable,
		})
	}
	return out
}

func renderListing(r *output.Renderer, l output.ListingOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(l)
	case output.ModeYAML:
		return r.YAML(l)
	case output.ModeTable:
		t := newTable(r)
		t.AppendHeader(table.Row{"Type", "Root", "Field", "References"})
		for _, typ := range l.Types {
			if len(typ.Links) == 0 {
				t.AppendRow(table.Row{typ.ID, typ.IsRoot, "", ""})
				continue
			}
			for _, link := range typ.Links {
				t.AppendRow(table.Row{typ.ID, typ.IsRoot, link.Field, link.Type})
			}
		}
		t.Render()
		return nil
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Types (%d)", len(l.Types))))
		r.Println("")
		for _, typ := range l.Types {
			line := "- **" + typ.ID + "**"
			if typ.IsRoot {
				line += " (root)"
			}
			r.Println(line)
			for _, link := range typ.Links {
				r.Printf("  - %s: %s\n", link.Field, output.FormatCode(link.Type))
			}
		}
		return nil
	default:
		s := r.Styles()
		r.Header(1, fmt.Sprintf("Types (%d)", len(l.Types)))
		for _, typ := range l.Types {
			if typ.IsRoot {
				r.Println(s.Root.Render(typ.ID))
			} else {
				r.Println(s.Type.Render(typ.ID))
			}
			for _, link := range typ.Links {
				r.Printf("  %s: %s\n", link.Field, s.Muted.Render(link.Type))
			}
		}
		return nil
	}
}

func renderDetail(r *output.Renderer, d output.DetailOutput) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(d)
	case output.ModeYAML:
		return r.YAML(d)
	case output.ModeTable:
		t := newTable(r)
		t.SetTitle(d.ID)
		t.AppendHeader(table.Row{"Field", "Type", "Object"})
		for _, f := range d.Fields {
			t.AppendRow(table.Row{f.Name, f.Type, f.Selectable})
		}
		t.Render()
		return nil
	case output.ModeMarkdown:
		title := d.ID
		if d.IsRoot {
			title += " (root)"
		}
		r.Println(output.FormatHeader(1, title))
		r.Println("")
		for _, f := range d.Fields {
			r.Printf("- %s: %s\n", f.Name, output.FormatCode(f.Type))
		}
		return nil
	default:
		s := r.Styles()
		if d.IsRoot {
			r.Println(s.Root.Render(d.ID))
		} else {
			r.Println(s.Header.Render(d.ID))
		}
		for _, f := range d.Fields {
			typ := s.Muted.Render(f.Type)
			if f.Selectable {
				typ = s.Type.Render(f.Type)
			}
			r.Printf("  %s: %s\n", f.Name, typ)
		}
		return nil
	}
}

// newTable creates a go-pretty table writing to the renderer output.
func newTable(r *output.Renderer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	return t
}
