package services

import (
	"context"
	"testing"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*BookingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewBookingCache(rdb, ttl), mr
}

func withCache(cache *BookingCache) fixtureOption {
	return func(o *BookingFacadeOptions) { o.Cache = cache }
}

func TestBookingCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, time.Minute)

	if !cache.Enabled() {
		t.Fatal("Enabled() = false with a client")
	}
	if err := cache.Set(ctx, "k", []string{"a", "b"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	var got []string
	hit, err := cache.Get(ctx, "k", &got)
	if err != nil || !hit || len(got) != 2 || got[1] != "b" {
		t.Fatalf("Get() = %v, %v, %v", hit, got, err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if hit, _ := cache.Get(ctx, "k", &got); hit {
		t.Error("Get() hit after the TTL expired")
	}
}

func TestBookingCacheInvalidateBumpsVersion(t *testing.T) {
	ctx := context.Background()
	cache, _ := newRedisCache(t, time.Minute)

	if v, err := cache.Version(ctx, "bookings:all"); v != 0 || err != nil {
		t.Fatalf("Version() = %d, %v; want 0", v, err)
	}
	if err := cache.Invalidate(ctx, "bookings:all", "bookings:user:u1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	for _, key := range []string{"bookings:all", "bookings:user:u1"} {
		if v, err := cache.Version(ctx, key); v != 1 || err != nil {
			t.Errorf("Version(%s) = %d, %v; want 1", key, v, err)
		}
	}
	if v, _ := cache.Version(ctx, "bookings:owner:o1"); v != 0 {
		t.Errorf("untouched key version = %d, want 0", v)
	}
}

func TestCachedListsFollowWrites(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, DefaultCacheTTL)
	f := newFixture(t, withCache(cache))

	lists := map[string]func() ([]models.Booking, error){
		"user":  func() ([]models.Booking, error) { return f.queries.ListByUser(ctx, "u1") },
		"owner": func() ([]models.Booking, error) { return f.queries.ListByOwner(ctx, "owner1") },
		"all":   func() ([]models.Booking, error) { return f.queries.ListAll(ctx) },
	}
	expect := func(step string, wantLen int, wantStatus string) {
		t.Helper()
		for name, list := range lists {
			got, err := list()
			if err != nil {
				t.Fatalf("%s: %s list error = %v", step, name, err)
			}
			if len(got) != wantLen {
				t.Fatalf("%s: %s list has %d bookings, want %d", step, name, len(got), wantLen)
			}
			if wantLen > 0 && got[0].Status != wantStatus {
				t.Errorf("%s: %s list status = %q, want %q", step, name, got[0].Status, wantStatus)
			}
		}
	}

	expect("empty", 0, "")

	created, err := f.facade.CreateBooking(ctx, request(day(2024, 8, 10), day(2024, 8, 15)))
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	expect("after create", 1, constants.BookingStatusConfirmed)
	if !mr.Exists(VersionedKey(userBookingsKey("u1"), 1)) {
		t.Errorf("user list was not cached at version 1; keys = %v", mr.Keys())
	}

	// A write behind the facade's back is not seen until the next invalidation.
	mustInsert(t, f.store.Bookings.Insert(ctx, &models.Booking{
		UserID: "u1", RoomID: "r1", HotelID: "h1", HotelOwnerID: "owner1",
		FromDate: day(2024, 7, 1), ToDate: day(2024, 7, 2), TotalPrice: 250, Status: constants.BookingStatusConfirmed,
	}))
	expect("served from cache", 1, constants.BookingStatusConfirmed)

	if _, err := f.facade.CancelBooking(ctx, created.ID); err != nil {
		t.Fatalf("CancelBooking() error = %v", err)
	}
	expect("after cancel", 2, constants.BookingStatusCancelled)
}

// interleavedBookings runs onFind after reading, modelling a write that lands
// between a list's store read and its cache fill
type interleavedBookings struct {
	store.Collection[models.Booking]
	onFind func()
}

func (c *interleavedBookings) FindWhere(ctx context.Context, filter store.Filter) ([]models.Booking, error) {
	out, err := c.Collection.FindWhere(ctx, filter)
	if c.onFind != nil {
		hook := c.onFind
		c.onFind = nil
		hook()
	}
	return out, err
}

func TestCachedListNotPoisonedByConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	cache, _ := newRedisCache(t, DefaultCacheTTL)
	f := newFixture(t, withCache(cache))

	bookings := &interleavedBookings{Collection: f.store.Bookings}
	queries := NewBookingQueryService(BookingQueryOptions{Bookings: bookings, Cache: cache})
	bookings.onFind = func() {
		if _, err := f.facade.CreateBooking(ctx, request(day(2024, 8, 10), day(2024, 8, 15))); err != nil {
			t.Errorf("CreateBooking() error = %v", err)
		}
	}

	stale, err := queries.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("first ListByUser() = %d bookings, want the 0 read before the write", len(stale))
	}

	fresh, err := queries.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(fresh) != 1 {
		t.Errorf("ListByUser() after the write = %d bookings, want 1", len(fresh))
	}
}
