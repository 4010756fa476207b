package sqlite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"recall/internal/store"
)

func TestCreateAndGetEntity(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	created, err := client.CreateEntity(ctx, "api_x", "api", []string{"rate limit 60/min"})
	if err != nil {
		t.Fatalf("create entity: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a non-zero entity id")
	}

	entity, err := client.GetEntity(ctx, "api_x")
	if err != nil {
		t.Fatalf("get entity: %v", err)
	}
	if entity.Name != "api_x" || entity.EntityType != "api" {
		t.Fatalf("unexpected entity: %+v", entity)
	}
	if len(entity.Observations) != 1 {
		t.Fatalf("expected exactly 1 observation, got %d", len(entity.Observations))
	}
	if !strings.Contains(entity.Observations[0].Content, "rate limit 60/min") {
		t.Fatalf("unexpected observation content: %q", entity.Observations[0].Content)
	}

	if err := client.DeleteEntity(ctx, "api_x"); err != nil {
		t.Fatalf("delete entity: %v", err)
	}
	if _, err := client.GetEntity(ctx, "api_x"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCreateEntityDuplicateNameLeavesGraphUnchanged(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	if _, err := client.CreateEntity(ctx, "user", "person", []string{"first"}); err != nil {
		t.Fatalf("create entity: %v", err)
	}

	_, err := client.CreateEntity(ctx, "user", "robot", []string{"second", "third"})
	if !errors.Is(err, store.ErrDuplicateEntity) {
		t.Fatalf("expected ErrDuplicateEntity, got %v", err)
	}

	entity, err := client.GetEntity(ctx, "user")
	if err != nil {
		t.Fatalf("get entity: %v", err)
	}
	if entity.EntityType != "person" {
		t.Fatalf("duplicate create mutated entity type: %q", entity.EntityType)
	}
	if len(entity.Observations) != 1 || entity.Observations[0].Content != "first" {
		t.Fatalf("duplicate create mutated observations: %+v", entity.Observations)
	}

	graph, err := client.ReadGraph(ctx)
	if err != nil {
		t.Fatalf("read graph: %v", err)
	}
	if graph.Stats.EntityCount != 1 {
		t.Fatalf("expected 1 entity after rejected duplicate, got %d", graph.Stats.EntityCount)
	}
}

func TestCreateEntityValidation(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	tests := []struct {
		name       string
		entityName string
		entityType string
	}{
		{"empty name", "", "api"},
		{"blank name", "   ", "api"},
		{"empty type", "thing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateEntity(ctx, tt.entityName, tt.entityType, nil)
			if !errors.Is(err, store.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestDeleteEntityCascadeIsolation(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	for _, e := range []struct{ name, typ, obs string }{
		{"proj", "project", "weekly scrape job"},
		{"api_x", "api", "rate limit 60/min"},
		{"tool_y", "tool", "installed locally"},
	} {
		if _, err := client.CreateEntity(ctx, e.name, e.typ, []string{e.obs}); err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
	}

	if _, err := client.AddRelation(ctx, "proj", "api_x", "uses"); err != nil {
		t.Fatalf("add relation: %v", err)
	}
	if _, err := client.AddRelation(ctx, "tool_y", "api_x", "wraps"); err != nil {
		t.Fatalf("add relation: %v", err)
	}
	survivorID, err := client.AddRelation(ctx, "proj", "tool_y", "uses")
	if err != nil {
		t.Fatalf("add relation: %v", err)
	}

	if err := client.DeleteEntity(ctx, "api_x"); err != nil {
		t.Fatalf("delete entity: %v", err)
	}

	graph, err := client.ReadGraph(ctx)
	if err != nil {
		t.Fatalf("read graph: %v", err)
	}
	if graph.Stats.EntityCount != 2 {
		t.Fatalf("expected 2 surviving entities, got %d", graph.Stats.EntityCount)
	}
	if len(graph.Relations) != 1 || graph.Relations[0].ID != survivorID {
		t.Fatalf("expected only the proj->tool_y relation to survive, got %+v", graph.Relations)
	}

	// Facts on untouched entities stay put.
	proj, err := client.GetEntity(ctx, "proj")
	if err != nil {
		t.Fatalf("get proj: %v", err)
	}
	if len(proj.Observations) != 1 {
		t.Fatalf("cascade touched unrelated observations: %+v", proj.Observations)
	}
}

func TestDeleteEntityNotFound(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	if err := client.DeleteEntity(ctx, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetEntityIncludesRelationsBothDirections(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if _, err := client.CreateEntity(ctx, name, "node", nil); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if _, err := client.AddRelation(ctx, "a", "b", "feeds"); err != nil {
		t.Fatalf("add relation: %v", err)
	}
	if _, err := client.AddRelation(ctx, "c", "a", "watches"); err != nil {
		t.Fatalf("add relation: %v", err)
	}

	entity, err := client.GetEntity(ctx, "a")
	if err != nil {
		t.Fatalf("get entity: %v", err)
	}
	if len(entity.RelationsOut) != 1 || entity.RelationsOut[0].ToEntity != "b" {
		t.Fatalf("unexpected outgoing relations: %+v", entity.RelationsOut)
	}
	if len(entity.RelationsIn) != 1 || entity.RelationsIn[0].FromEntity != "c" {
		t.Fatalf("unexpected incoming relations: %+v", entity.RelationsIn)
	}
}
