package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/filterbar"
	"github.com/xavierca1/sales-command/internal/infra/queue"
	"github.com/xavierca1/sales-command/internal/leadtable"
	"github.com/xavierca1/sales-command/internal/session"
)

var navigation = []NavItem{
	{Name: "Dashboard", Icon: "home", Current: true},
	{Name: "Leads", Icon: "users"},
	{Name: "Outreach", Icon: "message"},
	{Name: "Analytics", Icon: "chart"},
	{Name: "Calendar", Icon: "calendar"},
	{Name: "Settings", Icon: "settings"},
}

var sidebar = []SidebarSection{
	{Title: "Status", Name: "status", Options: []string{"All Leads", "Active", "Paused", "Completed"}},
	{Title: "Owner", Name: "owner", Options: []string{"All Owners", "Sarah Johnson", "Mike Chen", "Lisa Park", "David Kim"}},
	{Title: "Channel", Name: "channel", Options: []string{"All Channels", "Email", "LinkedIn", "Phone", "Direct Mail"}},
}

type DashboardUseCase struct {
	leads       entity.LeadRepositoryInterface
	kpis        entity.KPIProvider
	outreach    entity.OutreachHistoryProvider
	events      queue.EventPublisher
	defaultSort string
	logger      *zap.Logger
	now         func() time.Time
}

func NewDashboardUseCase(
	leads entity.LeadRepositoryInterface,
	kpis entity.KPIProvider,
	outreach entity.OutreachHistoryProvider,
	events queue.EventPublisher,
	defaultSort string,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		leads:       leads,
		kpis:        kpis,
		outreach:    outreach,
		events:      events,
		defaultSort: defaultSort,
		logger:      logger,
		now:         time.Now,
	}
}

// NewSessionState loads the lead collection once for a new session.
func (uc *DashboardUseCase) NewSessionState(ctx context.Context) (*session.State, error) {
	leads, err := uc.leads.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: CodeLeadSourceUnavailable, Message: "load leads", Err: err}
	}

	var opts []leadtable.Option
	if field, ok := leadtable.ParseSortField(uc.defaultSort); ok {
		opts = append(opts, leadtable.WithInitialSort(field))
	}

	return &session.State{
		Table:   leadtable.New(leads, opts...),
		Filters: filterbar.New(),
	}, nil
}

func (uc *DashboardUseCase) BuildDashboard(ctx context.Context, sess *session.Session) (DashboardView, error) {
	sections, err := uc.kpis.Sections(ctx)
	if err != nil {
		return DashboardView{}, &TechnicalError{Code: CodeLeadSourceUnavailable, Message: "load kpis", Err: err}
	}

	view := DashboardView{
		Navigation: navigation,
		Sidebar:    sidebar,
		KPIs:       make([]entity.KPISection, len(sections)),
	}
	for i, s := range sections {
		view.KPIs[i] = s.Resolved()
	}

	var (
		panel    session.Panel
		lead     entity.Lead
		overlap  string
		hasPanel bool
	)
	sess.Do(func(st *session.State) {
		view.Table = tableView(st.Table)
		view.Filters = FilterBarView{
			QuickFilters: st.Filters.QuickFilters(),
			Dropdowns:    st.Filters.Dropdowns(),
			Presets:      filterbar.Presets,
			ActiveLabels: st.Filters.ActiveLabels(),
		}
		if !st.Panel.IsOpen {
			return
		}
		l, ok := st.Table.Lead(st.Panel.LeadID)
		if !ok {
			st.Panel.Close()
			return
		}
		panel, lead, hasPanel = st.Panel, l, true
		overlap = overlapFor(st.Table, l)
	})

	if !hasPanel {
		return view, nil
	}

	history, err := uc.outreach.HistoryFor(ctx, lead.ID)
	if err != nil {
		return DashboardView{}, &TechnicalError{Code: CodeLeadSourceUnavailable, Message: "load outreach history", Err: err}
	}
	upcoming, completed := entity.SplitOutreach(history)
	view.Panel = &PanelView{
		Lead:          lead,
		Upcoming:      upcoming,
		Completed:     completed,
		ShowUpcoming:  !panel.HideUpcoming,
		ShowCompleted: !panel.HideCompleted,
		Overlap:       overlap,
	}
	return view, nil
}

// ActivateLead is the row click: it opens the detail panel and announces it.
func (uc *DashboardUseCase) ActivateLead(ctx context.Context, sess *session.Session, id entity.LeadID) error {
	found := false
	sess.Do(func(st *session.State) {
		if _, ok := st.Table.Lead(id); ok {
			st.Panel.Open(id)
			found = true
		}
	})
	if !found {
		return leadNotFound(id)
	}

	uc.publish(ctx, queue.DashboardEvent{Type: queue.EventLeadActivated, SessionID: sess.ID, LeadID: int(id)})
	return nil
}

func (uc *DashboardUseCase) SelectKPI(ctx context.Context, sess *session.Session, title string) error {
	sections, err := uc.kpis.Sections(ctx)
	if err != nil {
		return &TechnicalError{Code: CodeLeadSourceUnavailable, Message: "load kpis", Err: err}
	}
	for _, s := range sections {
		for _, c := range s.Cards {
			if c.Title == title {
				uc.publish(ctx, queue.DashboardEvent{Type: queue.EventKPISelected, SessionID: sess.ID, Value: title})
				return nil
			}
		}
	}
	return &DomainError{Code: CodeInvalidRequest, Message: fmt.Sprintf("unknown kpi %q", title)}
}

func (uc *DashboardUseCase) SelectPreset(ctx context.Context, sess *session.Session, preset string) error {
	if !filterbar.IsPreset(preset) {
		return &DomainError{Code: CodeInvalidRequest, Message: fmt.Sprintf("unknown preset %q", preset)}
	}
	uc.publish(ctx, queue.DashboardEvent{Type: queue.EventPresetSelected, SessionID: sess.ID, Value: preset})
	return nil
}

// SetSort rejects fields outside the enumeration; the table itself would
// accept them as a no-op ordering.
func (uc *DashboardUseCase) SetSort(sess *session.Session, raw string) (leadtable.SortField, error) {
	field, ok := leadtable.ParseSortField(raw)
	if !ok {
		return "", &DomainError{Code: CodeInvalidSortField, Message: fmt.Sprintf("cannot sort by %q", raw)}
	}
	sess.Do(func(st *session.State) { st.Table.SetSort(field) })
	return field, nil
}

func (uc *DashboardUseCase) ToggleSelectAll(sess *session.Session, checked bool) {
	sess.Do(func(st *session.State) { st.Table.ToggleSelectAll(checked) })
}

func (uc *DashboardUseCase) ToggleRowSelection(sess *session.Session, id entity.LeadID, checked bool) {
	sess.Do(func(st *session.State) { st.Table.ToggleRowSelection(id, checked) })
}

func (uc *DashboardUseCase) ToggleFilter(sess *session.Session, key string) {
	sess.Do(func(st *session.State) { st.Filters.Toggle(key) })
}

func (uc *DashboardUseCase) SelectDropdown(sess *session.Session, key, value string) bool {
	changed := false
	sess.Do(func(st *session.State) { changed = st.Filters.Select(key, value) })
	return changed
}

func (uc *DashboardUseCase) ClosePanel(sess *session.Session) {
	sess.Do(func(st *session.State) { st.Panel.Close() })
}

func (uc *DashboardUseCase) TogglePanelGroup(sess *session.Session, group session.PanelGroup) {
	sess.Do(func(st *session.State) { st.Panel.Toggle(group) })
}

func (uc *DashboardUseCase) ListLeads(sess *session.Session) LeadListOutput {
	var out LeadListOutput
	sess.Do(func(st *session.State) {
		field, dir := st.Table.Sort()
		out.Sort = SortStateDTO{Field: string(field), Direction: string(dir)}
		out.Selected = st.Table.Selected()
		out.Total = st.Table.Len()
		out.Leads = make([]entity.Lead, 0, st.Table.Len())
		for l := range st.Table.DeriveOrder() {
			out.Leads = append(out.Leads, l)
		}
	})
	return out
}

func (uc *DashboardUseCase) LeadDetail(ctx context.Context, sess *session.Session, id entity.LeadID) (LeadDetailOutput, error) {
	var (
		out   LeadDetailOutput
		found bool
	)
	sess.Do(func(st *session.State) {
		out.Lead, found = st.Table.Lead(id)
		out.Selected = st.Table.IsSelected(id)
	})
	if !found {
		return LeadDetailOutput{}, leadNotFound(id)
	}

	history, err := uc.outreach.HistoryFor(ctx, id)
	if err != nil {
		return LeadDetailOutput{}, &TechnicalError{Code: CodeLeadSourceUnavailable, Message: "load outreach history", Err: err}
	}
	out.Outreach = history
	return out, nil
}

// publish never fails the interaction; a lost event is only logged.
func (uc *DashboardUseCase) publish(ctx context.Context, event queue.DashboardEvent) {
	event.ID = uuid.NewString()
	event.OccurredAt = uc.now().UTC()

	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Warn("publish dashboard event",
			zap.String("type", event.Type),
			zap.String("session_id", event.SessionID),
			zap.Error(err),
		)
	}
}

func tableView(t *leadtable.Table) TableView {
	field, dir := t.Sort()
	view := TableView{
		Rows:          make([]RowView, 0, t.Len()),
		SortField:     field,
		SortDirection: dir,
		SelectedCount: t.SelectedCount(),
		Total:         t.Len(),
		AllSelected:   t.AllSelected(),
	}
	i := 0
	for l := range t.DeriveOrder() {
		view.Rows = append(view.Rows, RowView{
			Lead:     l,
			Selected: t.IsSelected(l.ID),
			Striped:  i%2 == 1,
		})
		i++
	}
	return view
}

// overlapFor reports another agent working a lead at the same company.
func overlapFor(t *leadtable.Table, lead entity.Lead) string {
	for other := range t.DeriveOrder() {
		if other.ID == lead.ID || other.SDRAgent == lead.SDRAgent {
			continue
		}
		if other.Company != "" && other.Company == lead.Company {
			return fmt.Sprintf("This lead is also being contacted by %s (%s)", other.SDRAgent, other.Owner.Name)
		}
	}
	return ""
}

func leadNotFound(id entity.LeadID) error {
	return &DomainError{Code: CodeLeadNotFound, Message: fmt.Sprintf("lead %d not found", id)}
}
