package usecases

import (
	"context"
	"time"

	"sdc/internal/domain/admin"
	"sdc/internal/domain/session"
)

type mockAdminRepo struct {
	createFunc     func(ctx context.Context, adm *admin.Admin) error
	getBySIDFunc   func(ctx context.Context, sid string) (*admin.Admin, error)
	getByEmailFunc func(ctx context.Context, email string) (*admin.Admin, error)
	updateFunc     func(ctx context.Context, adm *admin.Admin) error
}

func (m *mockAdminRepo) Create(ctx context.Context, adm *admin.Admin) error {
	return m.createFunc(ctx, adm)
}

func (m *mockAdminRepo) GetBySID(ctx context.Context, sid string) (*admin.Admin, error) {
	return m.getBySIDFunc(ctx, sid)
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockAdminRepo) Update(ctx context.Context, adm *admin.Admin) error {
	return m.updateFunc(ctx, adm)
}

type mockHasher struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	return m.hashFunc(password)
}

func (m *mockHasher) Verify(password, hash string) error {
	return m.verifyFunc(password, hash)
}

type mockTokenService struct {
	generateFunc func(adminSID string) (string, error)
	verifyFunc   func(tokenString string) (string, error)
}

func (m *mockTokenService) Generate(adminSID string) (string, error) {
	return m.generateFunc(adminSID)
}

func (m *mockTokenService) Verify(tokenString string) (string, error) {
	return m.verifyFunc(tokenString)
}

// fakeStore implements session.Store over a single in-memory record with a
// controllable clock.
type fakeStore struct {
	rec    *session.Record
	now    time.Time
	writes int
	clears int
}

func newFakeStore(now time.Time) *fakeStore {
	return &fakeStore{now: now}
}

func (s *fakeStore) Write(_ context.Context, _ session.Carrier, profile map[string]string, token string) {
	rec := session.NewRecord(profile, token, s.now)
	s.rec = &rec
	s.writes++
}

func (s *fakeStore) Load(_ context.Context, _ session.Carrier) (*session.Record, bool) {
	if s.rec == nil {
		return nil, false
	}
	if s.rec.IsExpired(s.now) {
		s.rec = nil
		s.clears++
		return nil, false
	}
	return s.rec, true
}

func (s *fakeStore) ReadToken(ctx context.Context, car session.Carrier) (string, bool) {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return "", false
	}
	return rec.Token, true
}

func (s *fakeStore) ReadProfile(ctx context.Context, car session.Carrier) (map[string]string, bool) {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return nil, false
	}
	return rec.Profile, true
}

func (s *fakeStore) ReadLoginTime(ctx context.Context, car session.Carrier) (time.Time, bool) {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return time.Time{}, false
	}
	return rec.LoginAt, true
}

func (s *fakeStore) RemainingMinutes(ctx context.Context, car session.Carrier) int {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return 0
	}
	return rec.RemainingMinutes(s.now)
}

func (s *fakeStore) Remaining(ctx context.Context, car session.Carrier) time.Duration {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return 0
	}
	return rec.Remaining(s.now)
}

func (s *fakeStore) IsExpired(ctx context.Context, car session.Carrier) bool {
	_, ok := s.Load(ctx, car)
	return !ok
}

func (s *fakeStore) IsExpiringSoon(ctx context.Context, car session.Carrier) bool {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return false
	}
	return rec.IsExpiringSoon(s.now)
}

func (s *fakeStore) Clear(_ context.Context, _ session.Carrier) {
	s.rec = nil
	s.clears++
}

type fakeWarningStore struct {
	dismissed map[string]bool
	ttls      map[string]time.Duration
	err       error
}

func newFakeWarningStore() *fakeWarningStore {
	return &fakeWarningStore{
		dismissed: make(map[string]bool),
		ttls:      make(map[string]time.Duration),
	}
}

func (s *fakeWarningStore) Dismiss(_ context.Context, token string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.dismissed[token] = true
	s.ttls[token] = ttl
	return nil
}

func (s *fakeWarningStore) IsDismissed(_ context.Context, token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.dismissed[token], nil
}

func (s *fakeWarningStore) Reset(_ context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.dismissed, token)
	return nil
}

func mustAdmin(name, email, hash string) *admin.Admin {
	adm, err := admin.NewAdmin(name, email, "", hash)
	if err != nil {
		panic(err)
	}
	return adm
}
