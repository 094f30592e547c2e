package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	confirmed, err := store.Confirmed(ctx, "s1")
	if err != nil {
		t.Fatalf("Confirmed: %v", err)
	}
	if confirmed {
		t.Error("a fresh session must not be confirmed")
	}

	if err := store.MarkConfirmed(ctx, "s1", time.Hour); err != nil {
		t.Fatalf("MarkConfirmed: %v", err)
	}

	confirmed, _ = store.Confirmed(ctx, "s1")
	if !confirmed {
		t.Error("session should be confirmed after marking")
	}

	// otra sesión no se ve afectada
	confirmed, _ = store.Confirmed(ctx, "s2")
	if confirmed {
		t.Error("confirmation must be scoped to one session")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if err := store.MarkConfirmed(ctx, "s1", -time.Second); err != nil {
		t.Fatalf("MarkConfirmed: %v", err)
	}

	confirmed, _ := store.Confirmed(ctx, "s1")
	if confirmed {
		t.Error("an expired confirmation must read as not confirmed")
	}
}
