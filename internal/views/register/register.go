// Package register implements the registration form. Submitting only
// records the captured values in the log; nothing is sent or stored.
package register

import (
	"log/slog"

	"postboard/internal/views"
)

// Fields lists the form inputs the view accepts, in form order.
var Fields = []string{"name", "surname", "email", "password"}

type Form struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

type View struct {
	form Form
	log  *slog.Logger
}

func New(log *slog.Logger) *View {
	return &View{log: log}
}

func (v *View) UpdateField(name, value string) error {
	if err := views.CheckField(name, Fields...); err != nil {
		return err
	}
	switch name {
	case "name":
		v.form.Name = value
	case "surname":
		v.form.Surname = value
	case "email":
		v.form.Email = value
	case "password":
		v.form.Password = value
	}
	return nil
}

func (v *View) Form() Form { return v.form }

// Submit writes the captured form to the log.
func (v *View) Submit() {
	v.log.Info("registration form submitted",
		slog.String("name", v.form.Name),
		slog.String("surname", v.form.Surname),
		slog.String("email", v.form.Email),
		slog.String("password", redact(v.form.Password)),
	)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "[redacted]"
}
