// Package session keeps one dashboard state per browser session.
package session

import (
	"sync"
	"time"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/filterbar"
	"github.com/xavierca1/sales-command/internal/leadtable"
)

type PanelGroup string

const (
	GroupUpcoming  PanelGroup = "upcoming"
	GroupCompleted PanelGroup = "completed"
)

// Panel is the slide-in lead detail panel.
type Panel struct {
	LeadID        entity.LeadID
	IsOpen        bool
	HideUpcoming  bool
	HideCompleted bool
}

func (p *Panel) Open(id entity.LeadID) {
	p.LeadID = id
	p.IsOpen = true
}

func (p *Panel) Close() {
	p.LeadID = 0
	p.IsOpen = false
}

// Toggle flips the visibility of one timeline group. Unknown groups are ignored.
func (p *Panel) Toggle(group PanelGroup) {
	switch group {
	case GroupUpcoming:
		p.HideUpcoming = !p.HideUpcoming
	case GroupCompleted:
		p.HideCompleted = !p.HideCompleted
	}
}

type State struct {
	Table   *leadtable.Table
	Filters *filterbar.FilterBar
	Panel   Panel
}

type Session struct {
	ID string

	mu       sync.Mutex
	state    *State
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session state. Every interaction
// goes through here so one finishes before the next starts.
func (s *Session) Do(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}
