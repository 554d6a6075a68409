// Package manage implements the admin panel's list-manage screens: load a
// table, fill a create or edit form, submit it, delete with confirmation.
// A screen is used by one goroutine at a time; the HTTP layer mounts a fresh
// screen per request.
package manage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/forms"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/notify"
)

// Client is the data access a screen needs. ContentService and
// UploadService both satisfy it.
type Client[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Tab is the type-independent view of a mounted screen.
type Tab interface {
	Name() string
	Load(ctx context.Context) error
	BeginEdit(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, confirmed bool) error
	State() any
}

// State is what a screen shows: the list, the form and the edit target.
type State[T any, F any] struct {
	Tab       string     `json:"tab"`
	Items     []T        `json:"items"`
	Form      F          `json:"form"`
	EditingID *uuid.UUID `json:"editingId,omitempty"`
	Loaded    bool       `json:"loaded"`
}

// Screen manages one entity type through client, editing it as form F.
type Screen[T models.Keyed, F any] struct {
	name    string
	label   string
	client  Client[T]
	codec   forms.Codec[T, F]
	session auth.Session
	notify  notify.Notifier
	logger  zerolog.Logger
	now     func() time.Time

	items   []T
	form    F
	editing *T
	loaded  bool
}

// Config names a screen. Label is the capitalised entity name used in messages.
type Config struct {
	Name  string
	Label string
}

// NewScreen creates a screen in create mode with an empty list.
func NewScreen[T models.Keyed, F any](cfg Config, client Client[T], codec forms.Codec[T, F], session auth.Session, n notify.Notifier, logger zerolog.Logger) *Screen[T, F] {
	if n == nil {
		n = notify.Fanout{}
	}
	return &Screen[T, F]{
		name:    cfg.Name,
		label:   cfg.Label,
		client:  client,
		codec:   codec,
		session: session,
		notify:  n,
		logger:  logger.With().Str("screen", cfg.Name).Logger(),
		now:     time.Now,
		items:   []T{},
		form:    codec.Blank(),
	}
}

func (s *Screen[T, F]) Name() string { return s.name }

// Items returns the list as of the last successful Load.
func (s *Screen[T, F]) Items() []T { return s.items }

// Form returns the current form contents.
func (s *Screen[T, F]) Form() F { return s.form }

// Editing returns the record being edited, or nil in create mode.
func (s *Screen[T, F]) Editing() *T { return s.editing }

// Snapshot returns a copy of the screen state.
func (s *Screen[T, F]) Snapshot() State[T, F] {
	st := State[T, F]{
		Tab:    s.name,
		Items:  append([]T(nil), s.items...),
		Form:   s.form,
		Loaded: s.loaded,
	}
	if st.Items == nil {
		st.Items = []T{}
	}
	if s.editing != nil {
		id := (*s.editing).Key()
		st.EditingID = &id
	}
	return st
}

func (s *Screen[T, F]) State() any { return s.Snapshot() }

// Load re-reads the list. On failure the previous list is kept.
func (s *Screen[T, F]) Load(ctx context.Context) error {
	items, err := s.client.List(ctx)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to load %s list", s.labelLower()), err)
		return err
	}
	s.items = items
	s.loaded = true
	return nil
}

// BeginCreate switches to create mode with an empty form.
func (s *Screen[T, F]) BeginCreate() {
	s.editing = nil
	s.form = s.codec.Blank()
}

// BeginEdit loads the record with id and pre-populates the form from it.
func (s *Screen[T, F]) BeginEdit(ctx context.Context, id uuid.UUID) error {
	rec, err := s.client.Get(ctx, id)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to open %s for editing", s.labelLower()), err)
		return err
	}
	s.editing = rec
	s.form = s.codec.FromRecord(*rec)
	return nil
}

// SetForm replaces the form contents.
func (s *Screen[T, F]) SetForm(form F) { s.form = form }

// Submit creates or updates from the form. On success the form is cleared,
// edit mode ends and the list is reloaded. On failure the form is kept.
func (s *Screen[T, F]) Submit(ctx context.Context) error {
	op, verb := apperrors.OpCreate, "created"
	if s.editing != nil {
		op, verb = apperrors.OpUpdate, "updated"
	}

	rec, err := s.codec.ToRecord(s.form, s.editing, s.session)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to %s %s", op, s.labelLower()), err)
		return err
	}

	if op == apperrors.OpCreate {
		err = s.client.Create(ctx, &rec)
	} else {
		err = s.client.Update(ctx, &rec)
	}
	if err != nil {
		s.fail(fmt.Sprintf("Failed to %s %s", op, s.labelLower()), err)
		return err
	}

	s.succeed(fmt.Sprintf("%s %s successfully", s.label, verb))
	s.BeginCreate()
	// the write went through; a failed reload only leaves the list stale
	_ = s.Load(ctx)
	return nil
}

// Delete removes the record with id once confirmed, then reloads. Without
// confirmation nothing is sent.
func (s *Screen[T, F]) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}
	if err := s.client.Delete(ctx, id); err != nil {
		s.fail(fmt.Sprintf("Failed to delete %s", s.labelLower()), err)
		return err
	}
	if s.editing != nil && (*s.editing).Key() == id {
		s.BeginCreate()
	}
	s.succeed(fmt.Sprintf("%s deleted successfully", s.label))
	_ = s.Load(ctx)
	return nil
}

func (s *Screen[T, F]) labelLower() string {
	if s.label == "" {
		return s.name
	}
	return lowerFirst(s.label)
}

func (s *Screen[T, F]) succeed(msg string) {
	s.notify.Notify(notify.Notification{Level: notify.LevelSuccess, Screen: s.name, Message: msg, Time: s.now()})
}

func (s *Screen[T, F]) fail(msg string, err error) {
	s.logger.Error().Err(err).Msg(msg)
	s.notify.Notify(notify.Notification{Level: notify.LevelError, Screen: s.name, Message: msg, Detail: detail(err), Time: s.now()})
}

// detail is the user-facing part of err: the validation message when there
// is one, otherwise the innermost cause.
func detail(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]+'a'-'A') + s[1:]
}
