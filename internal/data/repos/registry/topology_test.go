package registry

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	"github.com/geodykes/geodykes-backend/internal/data/repos/testutil"
	"github.com/geodykes/geodykes-backend/internal/domain"
	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
	"github.com/geodykes/geodykes-backend/internal/pkg/dbctx"
)

func TestTopologyRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTopologyRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, &domain.Topology{
		Coordinates: datatypes.NewJSONSlice(testutil.BasePoints),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Coordinates) != len(testutil.BasePoints) {
		t.Fatalf("want %d points, got %d", len(testutil.BasePoints), len(got.Coordinates))
	}
	for i, p := range got.Coordinates {
		if p != testutil.BasePoints[i] {
			t.Fatalf("point %d out of order: got %+v want %+v", i, p, testutil.BasePoints[i])
		}
	}
}

func TestTopologyEmptyIsValid(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTopologyRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, &domain.Topology{
		Coordinates: datatypes.NewJSONSlice([]domain.Point{}),
	})
	if err != nil {
		t.Fatalf("create empty: %v", err)
	}
	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Coordinates) != 0 {
		t.Fatalf("want empty coordinate set, got %d points", len(got.Coordinates))
	}
}

func TestCreateLocationRejectsBadPair(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewTopologyRepo(db, testutil.Logger(t))

	dyke := testutil.SeedDyke(t, ctx, tx, "Locatiedijk")
	cs := testutil.SeedCrossection(t, ctx, tx, dyke.ID, "Crossection Loc-1")

	_, err := repo.CreateLocation(dbc, &domain.LocationInTopology{
		CrossectionID: cs.ID,
		Coordinates:   domain.Coordinates{1, 2, 3},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("want validation error for 3-element pair, got %v", err)
	}

	loc, err := repo.CreateLocation(dbc, &domain.LocationInTopology{
		CrossectionID: cs.ID,
		Coordinates:   domain.Coordinates{36.2, 13.9},
	})
	if err != nil {
		t.Fatalf("valid pair rejected: %v", err)
	}
	if loc.ID == 0 {
		t.Fatal("location id not assigned")
	}
}

func TestLayersStackByTopologies(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	dyke := testutil.SeedDyke(t, ctx, tx, "Laagdijk")
	cs := testutil.SeedCrossection(t, ctx, tx, dyke.ID, "Crossection La-1")
	surface := testutil.SeedTopology(t, ctx, tx, testutil.BasePoints)
	mid := testutil.SeedTopology(t, ctx, tx, testutil.ShiftedPoints(50))
	bottom := testutil.SeedTopology(t, ctx, tx, testutil.ShiftedPoints(100))

	repo := NewCrossectionRepo(db, testutil.Logger(t))
	for _, layer := range []*domain.CrossectionLayer{
		{CrossectionID: cs.ID, SoilType: "clay", TopTopologyID: surface.ID, BottomTopologyID: mid.ID},
		{CrossectionID: cs.ID, SoilType: "peat", TopTopologyID: mid.ID, BottomTopologyID: bottom.ID},
	} {
		if _, err := repo.AddLayer(dbc, layer); err != nil {
			t.Fatalf("add layer %s: %v", layer.SoilType, err)
		}
	}

	layers, err := repo.ListLayers(dbc, cs.ID)
	if err != nil {
		t.Fatalf("list layers: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("want 2 layers, got %d", len(layers))
	}
	if layers[0].TopTopology == nil || layers[0].BottomTopology == nil {
		t.Fatal("bounding topologies not preloaded")
	}
	// Shared boundary: the first layer's bottom is the second's top.
	if layers[0].BottomTopologyID != layers[1].TopTopologyID {
		t.Fatalf("layers do not share the middle topology")
	}
}
