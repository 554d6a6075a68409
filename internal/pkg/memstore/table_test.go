package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
)

type row struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Rank      int
}

func (r *row) GetID() uuid.UUID        { return r.ID }
func (r *row) SetID(id uuid.UUID)      { r.ID = id }
func (r *row) GetCreatedAt() time.Time { return r.CreatedAt }
func (r *row) SetTimestamps(c, u time.Time) {
	r.CreatedAt = c
	r.UpdatedAt = u
}

func byRank(a, b row) bool { return a.Rank < b.Rank }

func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func TestTableOrdersAndAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	table := NewTable[row](byRank).WithClock(steppingClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	for _, rank := range []int{3, 1, 2} {
		r := &row{Rank: rank}
		if err := table.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if r.ID == uuid.Nil || r.CreatedAt.IsZero() {
			t.Fatalf("Create did not assign identity: %+v", r)
		}
	}

	rows, err := table.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if rows[i].Rank != want {
			t.Fatalf("rows[%d].Rank = %d, want %d", i, rows[i].Rank, want)
		}
	}
}

func TestTableUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	table := NewTable[row](byRank).WithClock(steppingClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	r := &row{Rank: 1}
	if err := table.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	created := r.CreatedAt

	edit := &row{ID: r.ID, Rank: 5}
	if err := table.Update(ctx, edit); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !edit.CreatedAt.Equal(created) {
		t.Errorf("created_at changed from %v to %v", created, edit.CreatedAt)
	}
	if !edit.UpdatedAt.After(created) {
		t.Errorf("updated_at %v not after created_at %v", edit.UpdatedAt, created)
	}
}

func TestTableMissingRows(t *testing.T) {
	ctx := context.Background()
	table := NewTable[row](byRank)
	missing := uuid.New()

	if _, err := table.GetByID(ctx, missing); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("GetByID error = %v", err)
	}
	if err := table.Update(ctx, &row{ID: missing}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("Update error = %v", err)
	}
	if err := table.Delete(ctx, missing); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("Delete error = %v", err)
	}
}

func TestTableFailNext(t *testing.T) {
	ctx := context.Background()
	table := NewTable[row](byRank)
	boom := errors.New("backend unavailable")

	table.FailNext(boom)
	if _, err := table.List(ctx); !errors.Is(err, boom) {
		t.Fatalf("List error = %v, want %v", err, boom)
	}
	if _, err := table.List(ctx); err != nil {
		t.Fatalf("failure should be consumed after one call: %v", err)
	}
}
