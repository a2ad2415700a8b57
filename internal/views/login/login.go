// Package login implements the login form: credential state and a submit
// that checks the credentials against the backend user list.
package login

import (
	"context"
	"errors"
	"log/slog"

	"postboard/internal/directory"
	"postboard/internal/models"
	"postboard/internal/views"
)

var ErrNoMatch = errors.New("no user matches the given credentials")

// Fields lists the form inputs the view accepts, in form order.
var Fields = []string{"email", "password"}

// Directory is the source of user records checked on submit.
type Directory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type Credentials struct {
	Email    string
	Password string
}

type Outcome int

const (
	Failure Outcome = iota
	Success
)

type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnavailable
	ReasonNoMatch
)

// Result is what a submit produced. On success UserID holds the matched
// record's ID; on failure Reason says why and Err carries the cause, if any.
type Result struct {
	Outcome Outcome
	Reason  Reason
	UserID  int64
	Err     error
}

func (r Result) OK() bool { return r.Outcome == Success }

// Message is the text shown to the user for a failed submit.
func (r Result) Message() string {
	switch r.Reason {
	case ReasonUnavailable:
		return "Serwis użytkowników jest niedostępny. Spróbuj ponownie później."
	case ReasonNoMatch:
		return "Błędne dane logowania"
	default:
		return ""
	}
}

type View struct {
	creds Credentials
	dir   Directory
	log   *slog.Logger
}

func New(dir Directory, log *slog.Logger) *View {
	return &View{dir: dir, log: log}
}

// UpdateField sets one credential field. No validation is applied to value.
func (v *View) UpdateField(name, value string) error {
	if err := views.CheckField(name, Fields...); err != nil {
		return err
	}
	switch name {
	case "email":
		v.creds.Email = value
	case "password":
		v.creds.Password = value
	}
	return nil
}

func (v *View) Credentials() Credentials { return v.creds }

// Submit fetches a fresh user list and looks for an exact match on the
// current credentials.
func (v *View) Submit(ctx context.Context) Result {
	users, err := v.dir.ListUsers(ctx)
	if err != nil {
		v.log.Error("login failed", slog.String("error", err.Error()))
		return Result{Outcome: Failure, Reason: ReasonUnavailable, Err: err}
	}

	u, ok := directory.FindMatch(users, v.creds.Email, v.creds.Password)
	if !ok {
		v.log.Info("invalid login credentials", slog.String("email", v.creds.Email))
		return Result{Outcome: Failure, Reason: ReasonNoMatch, Err: ErrNoMatch}
	}

	v.log.Info("login succeeded", slog.Int64("user_id", u.ID))
	return Result{Outcome: Success, UserID: u.ID}
}
