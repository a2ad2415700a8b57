package routes

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		path  string
		want  Route
		found bool
	}{
		{"/", Home, true},
		{"/login", Login, true},
		{"/register", Register, true},
		{"/posts", Posts, true},
		{"/about", 0, false},
		{"/Posts", 0, false},
		{"/posts/1", 0, false},
		{"", 0, false},
		{"Posts", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Match(tt.path)
			if ok != tt.found {
				t.Fatalf("Match(%q) found = %v, want %v", tt.path, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, r := range All() {
		got, ok := Match(r.Path())
		if !ok || got != r {
			t.Errorf("Match(%q) = %v, %v; want %v", r.Path(), got, ok, r)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	r := Route(42)
	if r.Path() != "" {
		t.Errorf("Path() = %q, want empty", r.Path())
	}
	if r.String() != "Route(?)" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestNavLinks(t *testing.T) {
	links := NavLinks()
	want := []string{"/", "/about", "/login", "/register", "/posts"}
	if len(links) != len(want) {
		t.Fatalf("got %d links, want %d", len(links), len(want))
	}
	for i, href := range want {
		if links[i].Href != href {
			t.Errorf("link %d href = %q, want %q", i, links[i].Href, href)
		}
	}
	if _, ok := Match(AboutPath); ok {
		t.Error("about link should not resolve to a view")
	}
}
