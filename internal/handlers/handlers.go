package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"postboard/internal/auth"
	"postboard/internal/models"
	"postboard/internal/routes"
	"postboard/internal/views/login"
	"postboard/internal/views/posts"
	"postboard/internal/views/register"
	"postboard/web"
)

var pageNames = []string{"home", "login", "register", "posts", "notfound", "error"}

type Handler struct {
	dir      login.Directory
	sessions *auth.Manager
	log      *slog.Logger
	pages    map[string]*template.Template
}

func New(dir login.Directory, sessions *auth.Manager, log *slog.Logger) (*Handler, error) {
	pages, err := parsePages(web.Templates)
	if err != nil {
		return nil, err
	}
	return &Handler{dir: dir, sessions: sessions, log: log, pages: pages}, nil
}

// parsePages builds one template set per page on top of the shared layout,
// so every page can define its own "content" block.
func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	base, err := template.ParseFS(fsys, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(fsys, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

type notice struct {
	Kind string
	Text string
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

type pageData struct {
	Title   string
	Nav     []navItem
	Session *auth.Session
	Data    any
}

func (h *Handler) nav(r *http.Request) []navItem {
	current, matched := routes.Match(r.URL.Path)
	links := routes.NavLinks()
	items := make([]navItem, 0, len(links))
	for _, l := range links {
		items = append(items, navItem{
			Label:  l.Label,
			Href:   l.Href,
			Active: matched && l.Href == current.Path(),
		})
	}
	return items
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	t, ok := h.pages[page]
	if !ok {
		h.log.Error("unknown page", slog.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pd := pageData{Title: title, Nav: h.nav(r), Data: data}
	s, err := h.sessions.Lookup(r)
	switch {
	case err == nil:
		pd.Session = &s
	case !errors.Is(err, auth.ErrNotFound) && !errors.Is(err, auth.ErrExpired):
		h.log.Error("session lookup failed", slog.String("error", err.Error()))
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", pd); err != nil {
		h.log.Error("render failed", slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

type fieldSetter interface {
	UpdateField(name, value string) error
}

// copyForm sets every named field on v from the posted form.
func copyForm(v fieldSetter, fields []string, form url.Values) error {
	for _, f := range fields {
		if err := v.UpdateField(f, form.Get(f)); err != nil {
			return err
		}
	}
	return nil
}

// -------- Pages

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	h.render(w, r, http.StatusOK, "home", "Strona Główna", nil)
}

type loginData struct {
	Email  string
	Notice *notice
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, http.StatusOK, "login", "Zaloguj się", loginData{})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "login", "Zaloguj się", loginData{
			Notice: &notice{Kind: "error", Text: "Nieprawidłowe dane formularza"},
		})
		return
	}

	v := login.New(h.dir, h.log)
	if err := copyForm(v, login.Fields, r.PostForm); err != nil {
		h.log.Error("login form copy failed", slog.String("error", err.Error()))
		h.render(w, r, http.StatusInternalServerError, "error", "Błąd", nil)
		return
	}

	res := v.Submit(r.Context())
	if !res.OK() {
		status := http.StatusUnauthorized
		if res.Reason == login.ReasonUnavailable {
			status = http.StatusBadGateway
		}
		h.render(w, r, status, "login", "Zaloguj się", loginData{
			Email:  v.Credentials().Email,
			Notice: &notice{Kind: "error", Text: res.Message()},
		})
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, res.UserID); err != nil {
		h.log.Error("session create failed", slog.Int64("user_id", res.UserID), slog.String("error", err.Error()))
		h.render(w, r, http.StatusInternalServerError, "error", "Błąd", nil)
		return
	}
	http.Redirect(w, r, routes.Posts.Path(), http.StatusSeeOther)
}

type registerData struct {
	Form   register.Form
	Notice *notice
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, http.StatusOK, "register", "Zarejestruj się", registerData{})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, "register", "Zarejestruj się", registerData{
			Notice: &notice{Kind: "error", Text: "Nieprawidłowe dane formularza"},
		})
		return
	}

	v := register.New(h.log)
	if err := copyForm(v, register.Fields, r.PostForm); err != nil {
		h.log.Error("register form copy failed", slog.String("error", err.Error()))
		h.render(w, r, http.StatusInternalServerError, "error", "Błąd", nil)
		return
	}
	v.Submit()

	h.render(w, r, http.StatusOK, "register", "Zarejestruj się", registerData{
		Form:   v.Form(),
		Notice: &notice{Kind: "info", Text: "Formularz został wysłany"},
	})
}

type postsData struct {
	Tabs   []posts.TabInfo
	Active posts.Tab
	Posts  []models.Post
	Notice *notice
}

func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	v := posts.New()
	status := http.StatusOK
	var n *notice
	if tab := r.URL.Query().Get("tab"); tab != "" {
		i, err := strconv.Atoi(tab)
		if err == nil {
			err = v.SelectTab(i)
		}
		if err != nil {
			h.log.Debug("invalid tab", slog.String("tab", tab))
			status = http.StatusBadRequest
			n = &notice{Kind: "error", Text: "Nieprawidłowa zakładka"}
		}
	}

	h.render(w, r, status, "posts", "Posty", postsData{
		Tabs:   v.Tabs(),
		Active: v.Active(),
		Posts:  v.Posts(),
		Notice: n,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		h.log.Warn("session destroy failed", slog.String("error", err.Error()))
	}
	http.Redirect(w, r, routes.Home.Path(), http.StatusSeeOther)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

type notFoundData struct {
	Path string
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "notfound", "Nie znaleziono", notFoundData{Path: r.URL.Path})
}
