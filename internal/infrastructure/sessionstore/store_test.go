package sessionstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/domain/session"
	"sdc/internal/shared/logger"
)

type fakeCarrier struct {
	cookies map[string]string
}

func newFakeCarrier() *fakeCarrier {
	return &fakeCarrier{cookies: make(map[string]string)}
}

func (f *fakeCarrier) GetCookie(name string) (string, bool) {
	v, ok := f.cookies[name]
	return v, ok
}

func (f *fakeCarrier) SetCookie(name, value string, _ int) {
	f.cookies[name] = value
}

func (f *fakeCarrier) ClearCookie(name string) {
	delete(f.cookies, name)
}

type failingMirror struct {
	err error
}

func (m *failingMirror) Save(context.Context, session.Record) error { return m.err }
func (m *failingMirror) Get(context.Context, string) (*session.Record, error) {
	return nil, m.err
}
func (m *failingMirror) Delete(context.Context, string) error { return m.err }
func (m *failingMirror) List(context.Context) ([]session.Record, error) {
	return nil, m.err
}

func newTestStore(mirror session.Mirror, at time.Time) *DualStore {
	s := NewDualStore(mirror, logger.NewLogger())
	s.now = func() time.Time { return at }
	return s
}

func TestDualStoreRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := newTestStore(NewMemoryMirror(), now)
	car := newFakeCarrier()
	profile := map[string]string{"id": "adm_1", "name": "Asha", "email": "asha@example.com"}

	store.Write(context.Background(), car, profile, "tok-1")

	token, ok := store.ReadToken(context.Background(), car)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	got, ok := store.ReadProfile(context.Background(), car)
	require.True(t, ok)
	assert.Equal(t, profile, got)

	loginAt, ok := store.ReadLoginTime(context.Background(), car)
	require.True(t, ok)
	assert.Equal(t, now, loginAt)

	assert.Equal(t, 60, store.RemainingMinutes(context.Background(), car))
	assert.False(t, store.IsExpired(context.Background(), car))
	assert.False(t, store.IsExpiringSoon(context.Background(), car))
}

func TestDualStoreFallsBackToMirror(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mirror := NewMemoryMirror()
	store := newTestStore(mirror, now)
	car := newFakeCarrier()

	store.Write(context.Background(), car, map[string]string{"id": "adm_1"}, "tok-1")

	// Lose the non-token cookies; the token still points into the mirror.
	car.ClearCookie(ProfileCookie)
	car.ClearCookie(LoginTimeCookie)

	profile, ok := store.ReadProfile(context.Background(), car)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"id": "adm_1"}, profile)
}

func TestDualStoreExpiredReadsAbsentAndClearsBoth(t *testing.T) {
	loginAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mirror := NewMemoryMirror()
	store := newTestStore(mirror, loginAt)
	car := newFakeCarrier()

	store.Write(context.Background(), car, map[string]string{"id": "adm_1"}, "tok-1")

	// 61 minutes later the record is past its expiry.
	store.now = func() time.Time { return loginAt.Add(61 * time.Minute) }

	_, ok := store.ReadToken(context.Background(), car)
	assert.False(t, ok)
	assert.True(t, store.IsExpired(context.Background(), car))
	assert.Equal(t, 0, store.RemainingMinutes(context.Background(), car))

	_, present := car.GetCookie(TokenCookie)
	assert.False(t, present)
	rec, err := mirror.Get(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestDualStoreExpiringSoon(t *testing.T) {
	loginAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := newTestStore(NewMemoryMirror(), loginAt)
	car := newFakeCarrier()

	store.Write(context.Background(), car, map[string]string{"id": "adm_1"}, "tok-1")
	store.now = func() time.Time { return loginAt.Add(56 * time.Minute) }

	assert.True(t, store.IsExpiringSoon(context.Background(), car))
	assert.Equal(t, 4, store.RemainingMinutes(context.Background(), car))
}

func TestDualStoreClearIsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := newTestStore(NewMemoryMirror(), now)
	car := newFakeCarrier()

	store.Write(context.Background(), car, map[string]string{"id": "adm_1"}, "tok-1")

	store.Clear(context.Background(), car)
	store.Clear(context.Background(), car)
	store.Clear(context.Background(), car)

	_, ok := store.ReadToken(context.Background(), car)
	assert.False(t, ok)
}

func TestDualStoreSwallowsMirrorErrors(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := newTestStore(&failingMirror{err: errors.New("redis down")}, now)
	car := newFakeCarrier()

	// Write must not panic or drop the cookie copy when the mirror fails.
	store.Write(context.Background(), car, map[string]string{"id": "adm_1"}, "tok-1")

	token, ok := store.ReadToken(context.Background(), car)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	store.Clear(context.Background(), car)
	_, ok = store.ReadToken(context.Background(), car)
	assert.False(t, ok)
}
