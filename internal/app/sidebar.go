package app

import (
	"sync"

	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

const SidebarResource = "sidebar"

// Sidebar holds the open/closed preference of the navigation drawer.
type Sidebar struct {
	notify ports.ChangeNotifier

	mu     sync.RWMutex
	isOpen bool
}

func NewSidebar(notify ports.ChangeNotifier) *Sidebar {
	return &Sidebar{notify: notify, isOpen: true}
}

func (s *Sidebar) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOpen
}

// Toggle flips the sidebar and returns the new state.
func (s *Sidebar) Toggle() bool {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	open := s.isOpen
	s.mu.Unlock()

	s.notify.Changed(SidebarResource)
	return open
}

func (s *Sidebar) Open()  { s.set(true) }
func (s *Sidebar) Close() { s.set(false) }

func (s *Sidebar) set(open bool) {
	s.mu.Lock()
	changed := s.isOpen != open
	s.isOpen = open
	s.mu.Unlock()

	if changed {
		s.notify.Changed(SidebarResource)
	}
}
