// Package sessionstore implements the dual-backend session store: the
// browser cookie backend plus a server-side mirror, written together and
// read cookie-first.
package sessionstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"sdc/internal/domain/session"
	"sdc/internal/shared/biztime"
	"sdc/internal/shared/logger"
)

// Cookie names for the three pieces of the session record.
const (
	TokenCookie     = "sdc_token"
	ProfileCookie   = "sdc_profile"
	LoginTimeCookie = "sdc_login_time"
)

// DualStore writes the session record to the cookie carrier and the mirror
// in the same call, and prefers cookies on read. Backend failures are logged
// and swallowed; reads degrade to absent.
type DualStore struct {
	mirror session.Mirror
	log    logger.Interface
	now    func() time.Time
}

func NewDualStore(mirror session.Mirror, log logger.Interface) *DualStore {
	return &DualStore{
		mirror: mirror,
		log:    log,
		now:    biztime.NowUTC,
	}
}

// Write persists a fresh record stamped with the current time. The write is
// side-effect only: storage errors are logged, never returned, so a storage
// quota or connectivity problem cannot break the login path.
func (s *DualStore) Write(ctx context.Context, car session.Carrier, profile map[string]string, token string) {
	rec := session.NewRecord(profile, token, s.now())

	s.writeCookies(car, rec)

	if err := s.mirror.Save(ctx, rec); err != nil {
		s.log.Warnw("failed to mirror session record", "error", err)
	}
}

func (s *DualStore) ReadToken(ctx context.Context, car session.Carrier) (string, bool) {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return "", false
	}
	return rec.Token, true
}

func (s *DualStore) ReadProfile(ctx context.Context, car session.Carrier) (map[string]string, bool) {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return nil, false
	}
	return rec.Profile, true
}

func (s *DualStore) ReadLoginTime(ctx context.Context, car session.Carrier) (time.Time, bool) {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return time.Time{}, false
	}
	return rec.LoginAt, true
}

func (s *DualStore) RemainingMinutes(ctx context.Context, car session.Carrier) int {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return 0
	}
	return rec.RemainingMinutes(s.now())
}

func (s *DualStore) Remaining(ctx context.Context, car session.Carrier) time.Duration {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return 0
	}
	return rec.Remaining(s.now())
}

// IsExpired reports true when the record has expired or none exists; an
// absent session and an expired one are deliberately indistinguishable.
func (s *DualStore) IsExpired(ctx context.Context, car session.Carrier) bool {
	_, ok := s.Load(ctx, car)
	return !ok
}

func (s *DualStore) IsExpiringSoon(ctx context.Context, car session.Carrier) bool {
	rec, ok := s.Load(ctx, car)
	if !ok {
		return false
	}
	return rec.IsExpiringSoon(s.now())
}

// Clear removes the record from both backends unconditionally. Idempotent.
func (s *DualStore) Clear(ctx context.Context, car session.Carrier) {
	token, _ := car.GetCookie(TokenCookie)

	car.ClearCookie(TokenCookie)
	car.ClearCookie(ProfileCookie)
	car.ClearCookie(LoginTimeCookie)

	if token == "" {
		return
	}
	if err := s.mirror.Delete(ctx, token); err != nil {
		s.log.Warnw("failed to delete mirrored session record", "error", err)
	}
}

// Load reads the record, enforcing the expired-means-absent precondition:
// an expired record is cleared from both backends as a side effect of the
// read. Cookies win over the mirror; a partial cookie set falls back to the
// mirror entry for the same token.
func (s *DualStore) Load(ctx context.Context, car session.Carrier) (*session.Record, bool) {
	rec := s.read(ctx, car)
	if rec == nil {
		return nil, false
	}

	if rec.IsExpired(s.now()) {
		s.Clear(ctx, car)
		return nil, false
	}

	return rec, true
}

func (s *DualStore) read(ctx context.Context, car session.Carrier) *session.Record {
	token, ok := car.GetCookie(TokenCookie)
	if !ok || token == "" {
		return nil
	}

	if rec := decodeCookies(car, token); rec != nil {
		return rec
	}

	// Cookie record incomplete or corrupt: consult the mirror.
	rec, err := s.mirror.Get(ctx, token)
	if err != nil {
		s.log.Warnw("failed to read mirrored session record", "error", err)
		return nil
	}
	return rec
}

func (s *DualStore) writeCookies(car session.Carrier, rec session.Record) {
	maxAge := int(session.Duration.Seconds())

	car.SetCookie(TokenCookie, rec.Token, maxAge)
	car.SetCookie(ProfileCookie, encodeProfile(rec.Profile), maxAge)
	car.SetCookie(LoginTimeCookie, strconv.FormatInt(rec.LoginAt.UnixMilli(), 10), maxAge)
}

func decodeCookies(car session.Carrier, token string) *session.Record {
	loginStr, ok := car.GetCookie(LoginTimeCookie)
	if !ok {
		return nil
	}
	ms, err := strconv.ParseInt(loginStr, 10, 64)
	if err != nil {
		return nil
	}

	profileStr, ok := car.GetCookie(ProfileCookie)
	if !ok {
		return nil
	}
	profile, err := decodeProfile(profileStr)
	if err != nil {
		return nil
	}

	return &session.Record{
		Token:   token,
		Profile: profile,
		LoginAt: biztime.FromUnixMilli(ms),
	}
}

func encodeProfile(profile map[string]string) string {
	if profile == nil {
		profile = map[string]string{}
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return base64.RawURLEncoding.EncodeToString([]byte("{}"))
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeProfile(encoded string) (map[string]string, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var profile map[string]string
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}
