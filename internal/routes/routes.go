// Package routes holds the route table shared by the router, the navigation
// bar and every redirect in the app.
package routes

// Route identifies one of the views the router can mount.
type Route int

const (
	Home Route = iota
	Login
	Register
	Posts
)

// AboutPath is linked from the navigation bar but has no view behind it.
const AboutPath = "/about"

var table = []struct {
	route Route
	path  string
	name  string
}{
	{Home, "/", "Home"},
	{Login, "/login", "Login"},
	{Register, "/register", "Register"},
	{Posts, "/posts", "Posts"},
}

// All returns every routed view in table order.
func All() []Route {
	out := make([]Route, 0, len(table))
	for _, e := range table {
		out = append(out, e.route)
	}
	return out
}

func (r Route) Path() string {
	for _, e := range table {
		if e.route == r {
			return e.path
		}
	}
	return ""
}

func (r Route) String() string {
	for _, e := range table {
		if e.route == r {
			return e.name
		}
	}
	return "Route(?)"
}

// Match resolves a request path to its route. Only exact paths match.
func Match(path string) (Route, bool) {
	for _, e := range table {
		if e.path == path {
			return e.route, true
		}
	}
	return 0, false
}

type Link struct {
	Label string
	Href  string
}

// NavLinks returns the navigation bar entries in display order.
func NavLinks() []Link {
	return []Link{
		{Label: "Strona Główna", Href: Home.Path()},
		{Label: "O Nas", Href: AboutPath},
		{Label: "Zaloguj się", Href: Login.Path()},
		{Label: "Zarejestruj się", Href: Register.Path()},
		{Label: "Posty", Href: Posts.Path()},
	}
}
