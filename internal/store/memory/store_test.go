package memory

import (
	"context"
	"errors"
	"testing"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/store"
)

func TestPrependAndList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(catalog.SeedConversations())

	if err := s.PrependConversation(ctx, models.Conversation{ID: "new", Name: "New Chat"}); err != nil {
		t.Fatalf("PrependConversation returned error: %v", err)
	}
	convs, err := s.ListConversations(ctx)
	if err != nil {
		t.Fatalf("ListConversations returned error: %v", err)
	}
	if len(convs) != 6 || convs[0].ID != "new" {
		t.Fatalf("expected new conversation first, got %+v", convs)
	}

	err = s.PrependConversation(ctx, models.Conversation{ID: "new"})
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateConversation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(catalog.SeedConversations())

	name := "Renamed"
	conv, err := s.UpdateConversation(ctx, store.UpdateConversationParams{ID: "2", Name: &name})
	if err != nil {
		t.Fatalf("UpdateConversation returned error: %v", err)
	}
	if conv.Name != "Renamed" || conv.Pinned {
		t.Fatalf("unexpected conversation: %+v", conv)
	}

	pinned := true
	conv, err = s.UpdateConversation(ctx, store.UpdateConversationParams{ID: "2", Pinned: &pinned})
	if err != nil {
		t.Fatalf("UpdateConversation returned error: %v", err)
	}
	if conv.Name != "Renamed" || !conv.Pinned {
		t.Fatalf("pin update clobbered the name: %+v", conv)
	}

	if _, err := s.UpdateConversation(ctx, store.UpdateConversationParams{ID: "missing", Name: &name}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetActiveAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(catalog.SeedConversations())

	if err := s.SetActiveConversation(ctx, "3"); err != nil {
		t.Fatalf("SetActiveConversation returned error: %v", err)
	}
	convs, _ := s.ListConversations(ctx)
	for _, c := range convs {
		if c.Active != (c.ID == "3") {
			t.Fatalf("unexpected active flag on %s", c.ID)
		}
	}

	if err := s.DeleteConversation(ctx, "3"); err != nil {
		t.Fatalf("DeleteConversation returned error: %v", err)
	}
	if _, err := s.GetConversation(ctx, "3"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteConversation(ctx, "3"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore(nil)
	if _, err := s.ListConversations(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
