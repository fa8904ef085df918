//go:build integration

package leads

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/plinyoo/starfield/pkg/errors"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	form := FormInvest
	first := &Lead{ID: uuid.New(), Submission: validSubmission(), CreatedAt: time.Now().UTC().Add(-time.Minute)}
	first.FormType = form
	second := &Lead{ID: uuid.New(), Submission: validSubmission(), CreatedAt: time.Now().UTC()}
	second.FormType = form
	second.InvestmentRange = "100k+"

	for _, l := range []*Lead{first, second} {
		if err := store.Save(ctx, l); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if err := store.Save(ctx, first); !errors.Is(err, errors.ErrCodeConflict) {
		t.Errorf("duplicate Save = %v, want CONFLICT", err)
	}

	got, err := store.List(ctx, ListOptions{FormType: form, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d leads, want 2", len(got))
	}
	if got[0].ID != second.ID || got[0].InvestmentRange != "100k+" {
		t.Errorf("newest lead = %+v, want %s", got[0], second.ID)
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("STARFIELD_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("STARFIELD_TEST_DATABASE_URL not set")
	}
	store, err := OpenPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer store.Close()
	exerciseStore(t, store)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("STARFIELD_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("STARFIELD_TEST_MONGO_URI not set")
	}
	store, err := OpenMongo(context.Background(), uri, "starfield_test")
	if err != nil {
		t.Fatalf("OpenMongo: %v", err)
	}
	defer store.Close()
	exerciseStore(t, store)
}
