// Package posts implements the tabbed post list.
package posts

import (
	"errors"
	"fmt"

	"postboard/internal/models"
)

var ErrInvalidTab = errors.New("invalid tab")

type Tab int

const (
	OwnTab Tab = iota
	AllTab
)

var (
	ownPosts = []models.Post{
		{ID: 1, Content: "Twój post #1"},
		{ID: 2, Content: "Twój post #2"},
	}
	allPosts = []models.Post{
		{ID: 3, Content: "Wszystki post #1"},
		{ID: 4, Content: "Wszystki post #2"},
	}
)

var tabs = []struct {
	label string
	posts []models.Post
}{
	OwnTab: {"Twoje Posty", ownPosts},
	AllTab: {"Wszystkie Posty", allPosts},
}

// TabInfo describes one tab header for rendering.
type TabInfo struct {
	Index  int
	Label  string
	Active bool
}

type View struct {
	active Tab
}

// New returns a view with the first tab selected.
func New() *View {
	return &View{active: OwnTab}
}

func (v *View) SelectTab(i int) error {
	if i < 0 || i >= len(tabs) {
		return fmt.Errorf("%w: %d", ErrInvalidTab, i)
	}
	v.active = Tab(i)
	return nil
}

func (v *View) Active() Tab { return v.active }

// Posts returns a copy of the active tab's posts.
func (v *View) Posts() []models.Post {
	src := tabs[v.active].posts
	out := make([]models.Post, len(src))
	copy(out, src)
	return out
}

func (v *View) Tabs() []TabInfo {
	out := make([]TabInfo, 0, len(tabs))
	for i, t := range tabs {
		out = append(out, TabInfo{Index: i, Label: t.label, Active: Tab(i) == v.active})
	}
	return out
}
