package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/infra/mockdata"
	"github.com/xavierca1/sales-command/internal/leadtable"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	stripedStyle  = cellStyle.Foreground(lipgloss.Color("245"))
	selectedStyle = cellStyle.Bold(true).Foreground(lipgloss.Color("86"))
	captionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type leadsOptions struct {
	sort      string
	desc      bool
	selectIDs []int
}

func newLeadsCmd(a *app) *cobra.Command {
	opts := &leadsOptions{}

	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Print the lead table",
		Example: `  salescommand leads --sort company
  salescommand leads --sort name --desc --select 1,3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(cmd.Context(), a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			leads, err := leadSource(db, mockdata.NewRepository()).FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("load leads: %w", err)
			}

			t, err := buildTable(leads, *opts)
			if err != nil {
				return err
			}
			return renderLeadTable(cmd.OutOrStdout(), t)
		},
	}

	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "sort field ("+fieldList()+")")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort descending")
	cmd.Flags().IntSliceVar(&opts.selectIDs, "select", nil, "lead ids to mark as selected")
	return cmd
}

// buildTable replays the flags as the clicks a user would make.
func buildTable(leads []entity.Lead, opts leadsOptions) (*leadtable.Table, error) {
	t := leadtable.New(leads)

	if opts.sort != "" {
		field, ok := leadtable.ParseSortField(opts.sort)
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q (want one of %s)", opts.sort, fieldList())
		}
		t.SetSort(field)
		if opts.desc {
			t.SetSort(field)
		}
	} else if opts.desc {
		return nil, fmt.Errorf("--desc needs --sort")
	}

	for _, id := range opts.selectIDs {
		t.ToggleRowSelection(entity.LeadID(id), true)
	}
	return t, nil
}

func renderLeadTable(w io.Writer, t *leadtable.Table) error {
	var rows [][]string
	var selected []bool
	for l := range t.DeriveOrder() {
		mark := ""
		if t.IsSelected(l.ID) {
			mark = "✓"
		}
		selected = append(selected, t.IsSelected(l.ID))
		rows = append(rows, []string{
			mark,
			strconv.Itoa(int(l.ID)),
			l.Name,
			l.Title,
			l.Company,
			l.Owner.Name,
			l.SDRAgent,
			fmt.Sprintf("%d sent / %d queued / %d errors", l.OutreachSummary.Sent, l.OutreachSummary.Queued, l.OutreachSummary.Errors),
			string(l.LastOutreach.Channel) + " " + l.LastOutreach.Date,
			string(l.NextOutreach.Channel) + " " + l.NextOutreach.Date,
			string(l.Status),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(captionStyle).
		Headers("", "ID", "LEAD NAME", "TITLE", "COMPANY", "OWNER", "SDR AGENT", "OUTREACH", "LAST", "NEXT", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case selected[row]:
				return selectedStyle
			case row%2 == 1:
				return stripedStyle
			default:
				return cellStyle
			}
		})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, captionStyle.Render(caption(t)))
	return err
}

func caption(t *leadtable.Table) string {
	field, dir := t.Sort()
	text := strconv.Itoa(t.Len()) + " total leads"
	if n := t.SelectedCount(); n > 0 {
		text = strconv.Itoa(n) + " selected of " + strconv.Itoa(t.Len())
	}
	if field != leadtable.SortNone {
		text += fmt.Sprintf(", sorted by %s %s", field, dir)
	}
	return text
}

func fieldList() string {
	fields := leadtable.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
