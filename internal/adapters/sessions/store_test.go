package sessions

import (
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/ports"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// exerciseStore checks the SessionStore contract shared by every adapter.
func exerciseStore(t *testing.T, store ports.SessionStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("get missing: err = %v, want ErrSessionNotFound", err)
	}

	dur := 1.0
	s := domain.NewSession().
		Begin(domain.TripForm{CurrentLocation: "LA", CurrentCycleUsed: "10"}).
		Succeed(domain.TripResult{
			TotalDistance: 1400,
			Compliant:     true,
			ELDLogURL:     "/api/eld-log/1/",
			Stops:         []domain.Stop{{Type: domain.StopPickup, Location: "PHX", Duration: &dur}},
		})

	if err := store.Put(ctx, "s1", s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusIdle || got.Form.CurrentLocation != "LA" {
		t.Errorf("session = %+v", got)
	}
	if got.Result == nil || got.Result.TotalDistance != 1400 || len(got.Result.Stops) != 1 {
		t.Fatalf("result not stored: %+v", got.Result)
	}
	if got.Result.Stops[0].Duration == nil || *got.Result.Stops[0].Duration != 1 {
		t.Errorf("stop duration lost: %+v", got.Result.Stops[0])
	}

	if err := store.Put(ctx, "s1", got.Fail("Failed to calculate trip")); err != nil {
		t.Fatalf("put replace: %v", err)
	}
	got, err = store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if got.Failure == nil || got.Failure.Kind != domain.CalculationFailed || got.Result == nil {
		t.Errorf("replace lost state: %+v", got)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("get deleted: err = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	if err := store.Put(ctx, "s1", domain.NewSession()); err != nil {
		t.Fatalf("put: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, err := store.Get(ctx, "s1"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	now = now.Add(time.Second)
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("get after expiry: err = %v", err)
	}
	if n := store.Sweep(); n != 1 {
		t.Fatalf("sweep removed %d, want 1", n)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	exerciseStore(t, NewRedisStore(client, time.Hour))

	store := NewRedisStore(client, time.Minute)
	if err := store.Put(context.Background(), "s2", domain.NewSession()); err != nil {
		t.Fatalf("put: %v", err)
	}
	if ttl := mr.TTL(redisKeyPrefix + "s2"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(context.Background(), "s2"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Fatalf("get after ttl: err = %v", err)
	}
}

func TestBadgerStore(t *testing.T) {
	db, err := OpenBadger("")
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	defer db.Close()

	exerciseStore(t, NewBadgerStore(db, time.Hour))
}
