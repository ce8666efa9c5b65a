package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matst80/portfolio-finder/pkg/browse"
	"github.com/matst80/portfolio-finder/pkg/catalog"
	"github.com/matst80/portfolio-finder/pkg/common/jsoncompat"
	"github.com/matst80/portfolio-finder/pkg/controller"
	"github.com/matst80/portfolio-finder/pkg/types"
	"github.com/spf13/cobra"
)

func writeJson(w io.Writer, v any) error {
	data, err := jsoncompat.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

type kindInfo struct {
	Name   string        `json:"name"`
	Schema *types.Schema `json:"schema,omitempty"`
}

func newKindsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the built in collection kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ret := make([]kindInfo, 0)
			for _, name := range catalog.Names() {
				kind, _ := catalog.Lookup(name)
				ret = append(ret, kindInfo{Name: name, Schema: kind.Schema()})
			}
			if opts.Format == "json" {
				return writeJson(cmd.OutOrStdout(), ret)
			}
			w := cmd.OutOrStdout()
			for _, k := range ret {
				if k.Schema == nil {
					fmt.Fprintf(w, "%-14s schema from file\n", k.Name)
					continue
				}
				facets := make([]string, 0, len(k.Schema.Facets))
				for _, f := range k.Schema.Facets {
					facets = append(facets, string(f.Key))
				}
				sorts := make([]string, 0, len(k.Schema.Sorts))
				for _, s := range k.Schema.Sorts {
					sorts = append(sorts, string(s.Key))
				}
				fmt.Fprintf(w, "%-14s facets: %s; sorts: %s\n", k.Name, strings.Join(facets, ", "), strings.Join(sorts, ", "))
			}
			return nil
		},
	}
}

func newFacetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facets <file>",
		Short: "Show the filter values of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(args[0])
			if err != nil {
				return err
			}
			ctrl := opts.controller(c)
			facets := ctrl.Facets().ToJsonFacets(nil)
			if opts.Format == "json" {
				return writeJson(cmd.OutOrStdout(), facets)
			}
			w := cmd.OutOrStdout()
			for _, f := range facets {
				fmt.Fprintf(w, "%s (%s)\n", f.Name, f.Key)
				for _, v := range f.Values {
					fmt.Fprintf(w, "  %s (%d)\n", v, f.Counts[v])
				}
			}
			return nil
		},
	}
}

type queryFlags struct {
	Query    string
	Facets   []string
	Tags     []string
	Ranges   []string
	Sort     string
	Desc     bool
	Criteria string
	Limit    int
}

type queryOutput struct {
	Kind     string       `json:"kind"`
	Total    int          `json:"total"`
	Count    int          `json:"count"`
	Criteria string       `json:"criteria"`
	Items    []types.Item `json:"items"`
}

func splitFlag(value string) (types.FieldKey, string, error) {
	key, v, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", value)
	}
	return types.FieldKey(strings.TrimSpace(key)), strings.TrimSpace(v), nil
}

// applyQueryFlags feeds the flags through the controller mutators. Keys the
// schema does not know are reported as errors instead of being ignored.
func applyQueryFlags(ctrl *controller.Controller, flags *queryFlags) error {
	schema := ctrl.Schema()
	if flags.Criteria != "" {
		parsed, err := types.ParseCriteria(flags.Criteria)
		if err != nil {
			return err
		}
		ctrl.Apply(parsed)
	}
	if flags.Query != "" {
		ctrl.SetSearchText(flags.Query)
	}
	for _, f := range flags.Facets {
		key, value, err := splitFlag(f)
		if err != nil {
			return err
		}
		if field, ok := schema.GetFacet(key); !ok || field.IsTags() {
			return fmt.Errorf("unknown facet %q", key)
		}
		ctrl.SetFacet(key, value)
	}
	for _, t := range flags.Tags {
		key, value, err := splitFlag(t)
		if err != nil {
			return err
		}
		if field, ok := schema.GetFacet(key); !ok || !field.IsTags() {
			return fmt.Errorf("unknown tag facet %q", key)
		}
		criteria := ctrl.Criteria()
		if !criteria.HasTag(key, value) {
			ctrl.ToggleTag(key, value)
		}
	}
	for _, r := range flags.Ranges {
		key, value, err := splitFlag(r)
		if err != nil {
			return err
		}
		if !schema.HasRange(key) {
			return fmt.Errorf("unknown range %q", key)
		}
		var lo, hi float64
		if _, err := fmt.Sscanf(value, "%f-%f", &lo, &hi); err != nil {
			return fmt.Errorf("range %q: expected min-max", r)
		}
		ctrl.SetRange(key, lo, hi)
	}
	key := types.FieldKey(flags.Sort)
	if key == "" {
		key = ctrl.Criteria().Sort
	}
	if key == "" {
		return nil
	}
	if _, ok := schema.GetSort(key); !ok {
		return fmt.Errorf("unknown sort %q", key)
	}
	if ctrl.Criteria().Sort != key {
		ctrl.SetSort(key)
	}
	want := types.Ascending
	if flags.Desc || (flags.Sort == "" && ctrl.Criteria().Direction == types.Descending) {
		want = types.Descending
	}
	if ctrl.Criteria().Direction != want {
		ctrl.SetSort(key)
	}
	return nil
}

func newQueryCommand(opts *rootOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "query <file>",
		Short: "Filter and sort a collection",
		Example: `  finder query examples/projects.yaml --q react --tag tech=typescript --sort difficulty
  finder query examples/skills.yaml --criteria 'f=category:backend&sort=level&dir=desc'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(args[0])
			if err != nil {
				return err
			}
			ctrl := opts.controller(c)
			if err := applyQueryFlags(ctrl, flags); err != nil {
				return err
			}
			result := ctrl.Result()
			items := result.Items
			if flags.Limit > 0 && len(items) > flags.Limit {
				items = items[:flags.Limit]
			}
			if opts.Format == "json" {
				return writeJson(cmd.OutOrStdout(), queryOutput{
					Kind:     c.Kind,
					Total:    result.Total,
					Count:    result.Len(),
					Criteria: result.Criteria.String(),
					Items:    items,
				})
			}
			w := cmd.OutOrStdout()
			criteria := ctrl.Criteria()
			fmt.Fprintf(w, "%d of %d %s\n", result.Len(), result.Total, strings.ToLower(c.Schema.Name))
			now := time.Now()
			for _, item := range items {
				line := "  " + browse.Title(c.Schema, item)
				if criteria.Sort != "" {
					line += " [" + browse.SortValue(c.Schema, item, criteria.Sort, now) + "]"
				}
				if labels := browse.Labels(c.Schema, item); len(labels) > 0 {
					line += " " + strings.Join(labels, ", ")
				}
				fmt.Fprintln(w, line)
			}
			fmt.Fprintf(w, "?%s\n", criteria.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.Query, "q", "", "free text search")
	cmd.Flags().StringArrayVar(&flags.Facets, "facet", nil, "single value facet as key=value")
	cmd.Flags().StringArrayVar(&flags.Tags, "tag", nil, "tag selection as key=value, repeat for OR")
	cmd.Flags().StringArrayVar(&flags.Ranges, "range", nil, "number range as key=min-max")
	cmd.Flags().StringVar(&flags.Sort, "sort", "", "sort key")
	cmd.Flags().BoolVar(&flags.Desc, "desc", false, "sort descending")
	cmd.Flags().StringVar(&flags.Criteria, "criteria", "", "criteria query string, e.g. from the browser")
	cmd.Flags().IntVar(&flags.Limit, "limit", 0, "max items to print")
	return cmd
}

func newSuggestCommand(opts *rootOptions) *cobra.Command {
	limit := 10
	cmd := &cobra.Command{
		Use:   "suggest <file> <prefix>",
		Short: "Complete a search word from the collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(args[0])
			if err != nil {
				return err
			}
			matches := opts.controller(c).Suggest(args[1], limit)
			if opts.Format == "json" {
				return writeJson(cmd.OutOrStdout(), matches)
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", m.Word, m.Hits)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", limit, "max suggestions")
	return cmd
}

func newBrowseCommand(opts *rootOptions) *cobra.Command {
	criteria := ""
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a collection interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(args[0])
			if err != nil {
				return err
			}
			if logFile := os.Getenv("FINDER_LOG"); logFile != "" {
				f, err := tea.LogToFile(logFile, "finder")
				if err != nil {
					return err
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}
			ctrlOpts := []controller.Option{}
			if criteria != "" {
				parsed, err := types.ParseCriteria(criteria)
				if err != nil {
					return err
				}
				ctrlOpts = append(ctrlOpts, controller.WithCriteria(parsed))
			}
			p := tea.NewProgram(browse.New(opts.controller(c, ctrlOpts...)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&criteria, "criteria", "", "initial criteria query string")
	return cmd
}

func newConvertCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrite a collection as YAML, JSON or gzipped JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.load(args[0])
			if err != nil {
				return err
			}
			return opts.storage().SaveCollection(args[1], c)
		},
	}
}
