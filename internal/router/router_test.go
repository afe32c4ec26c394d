package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/escriba/internal/screen"
)

// fakeScreen stands in for home and session screens.
type fakeScreen struct {
	name    string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.name }
func (s *fakeScreen) Title() string                           { return s.name }

func TestPushSession(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	session := &fakeScreen{name: "session"}
	r.Update(PushScreenMsg{Screen: session})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "session" {
		t.Errorf("active = %q, want session", r.Active().Title())
	}
	if !session.initRan {
		t.Error("Init() should run on the pushed screen")
	}
}

func TestPopReturnsHome(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	r.Push(&fakeScreen{name: "session"})

	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopNeverRemovesHome(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Pop()
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pops at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "session"})

	fresh := &fakeScreen{name: "session-2"}
	r.Update(ReplaceScreenMsg{Screen: fresh})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "session-2" {
		t.Errorf("active = %q, want session-2", r.Active().Title())
	}
	if !fresh.initRan {
		t.Error("Init() should run on the replacement screen")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	if cmd := r.Update(tea.KeyPressMsg{Code: 'j', Text: "j"}); cmd != nil {
		t.Errorf("fake screen returns no command, got %v", cmd)
	}
	if r.View(80, 24) != "home" {
		t.Errorf("view = %q, want home", r.View(80, 24))
	}
}
