package registry

import (
	"context"
	"testing"

	"github.com/geodykes/geodykes-backend/internal/data/repos/testutil"
	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
)

func TestDykeNameUnique(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewDykeRepo(db, testutil.Logger(t))

	if _, err := repo.Create(dbc, &domain.Dyke{Name: "Westdijk"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(dbc, &domain.Dyke{Name: "Westdijk"})
	if err == nil {
		t.Fatal("duplicate dyke name accepted")
	}
	if !apperr.IsIntegrity(err) {
		t.Fatalf("want integrity kind, got %v", err)
	}
}

func TestCrossectionNameUnique(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	dyke := testutil.SeedDyke(t, ctx, tx, "Oostdijk")
	repo := NewCrossectionRepo(db, testutil.Logger(t))

	if _, err := repo.Create(dbc, &domain.Crossection{DykeID: dyke.ID, Name: "Crossection 1-1"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(dbc, &domain.Crossection{DykeID: dyke.ID, Name: "Crossection 1-1"})
	if err == nil {
		t.Fatal("duplicate crossection name accepted")
	}
	if !apperr.IsIntegrity(err) {
		t.Fatalf("want integrity kind, got %v", err)
	}
}

func TestDykeDeleteBlockedByCrossections(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewDykeRepo(db, testutil.Logger(t))

	dyke := testutil.SeedDyke(t, ctx, tx, "Zuiderdijk")
	testutil.SeedCrossection(t, ctx, tx, dyke.ID, "Crossection Z-1")

	err := repo.Delete(dbc, dyke.ID)
	if err == nil {
		t.Fatal("deleted a dyke that still owns crossections")
	}
	if !apperr.IsValidation(err) {
		t.Fatalf("want validation kind, got %v", err)
	}

	empty := testutil.SeedDyke(t, ctx, tx, "Noorderdijk")
	if err := repo.Delete(dbc, empty.ID); err != nil {
		t.Fatalf("delete empty dyke: %v", err)
	}
	if _, err := repo.GetByID(dbc, empty.ID); !apperr.IsNotFound(err) {
		t.Fatalf("want not-found after delete, got %v", err)
	}
}

func TestDykeListPreloadsCrossections(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewDykeRepo(db, testutil.Logger(t))

	dyke := testutil.SeedDyke(t, ctx, tx, "Lentedijk")
	testutil.SeedCrossection(t, ctx, tx, dyke.ID, "Crossection L-1")
	testutil.SeedCrossection(t, ctx, tx, dyke.ID, "Crossection L-2")

	got, err := repo.GetByID(dbc, dyke.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Crossections) != 2 {
		t.Fatalf("want 2 crossections preloaded, got %d", len(got.Crossections))
	}
}
