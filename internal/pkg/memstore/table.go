// Package memstore is an in-process table store with the same contract as the
// Postgres repositories: server-assigned ids and timestamps, fixed list order.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

// Record is the pointer method set a stored row must provide.
type Record[T any] interface {
	*T
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	GetCreatedAt() time.Time
	SetTimestamps(created, updated time.Time)
}

// Table keeps rows of T in memory and lists them in less order.
type Table[T any, P Record[T]] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]T
	less func(a, b T) bool
	now  func() time.Time

	// FailNext, when set, is returned (once) by the next call instead of touching the rows.
	failNext error
}

// NewTable creates an empty table ordered by less.
func NewTable[T any, P Record[T]](less func(a, b T) bool) *Table[T, P] {
	return &Table[T, P]{
		rows: make(map[uuid.UUID]T),
		less: less,
		now:  time.Now,
	}
}

// WithClock replaces the time source used for created_at and updated_at.
func (t *Table[T, P]) WithClock(now func() time.Time) *Table[T, P] {
	t.now = now
	return t
}

// FailNext makes the next operation return err. Used to simulate backend outages.
func (t *Table[T, P]) FailNext(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failNext = err
}

func (t *Table[T, P]) takeFailure() error {
	err := t.failNext
	t.failNext = nil
	return err
}

// stamp truncates to microseconds, the precision Postgres timestamptz keeps.
func (t *Table[T, P]) stamp() time.Time {
	return t.now().UTC().Truncate(time.Microsecond)
}

func (t *Table[T, P]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	if err := t.takeFailure(); err != nil {
		t.mu.Unlock()
		return nil, err
	}
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row)
	}
	t.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return t.less(out[i], out[j]) })
	return out, nil
}

func (t *Table[T, P]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.takeFailure(); err != nil {
		return nil, err
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("record %s not found", id))
	}
	return &row, nil
}

// Create assigns an id and timestamps to rec and stores a copy.
func (t *Table[T, P]) Create(ctx context.Context, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.takeFailure(); err != nil {
		return err
	}

	p := P(rec)
	now := t.stamp()
	p.SetID(uuid.New())
	p.SetTimestamps(now, now)
	t.rows[p.GetID()] = *rec
	return nil
}

// Update replaces the stored row with rec, keeping its created_at.
func (t *Table[T, P]) Update(ctx context.Context, rec *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.takeFailure(); err != nil {
		return err
	}

	p := P(rec)
	existing, ok := t.rows[p.GetID()]
	if !ok {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("record %s not found", p.GetID()))
	}
	p.SetTimestamps(P(&existing).GetCreatedAt(), t.stamp())
	t.rows[p.GetID()] = *rec
	return nil
}

func (t *Table[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.takeFailure(); err != nil {
		return err
	}
	if _, ok := t.rows[id]; !ok {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("record %s not found", id))
	}
	delete(t.rows, id)
	return nil
}

// Len returns the number of stored rows.
func (t *Table[T, P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
