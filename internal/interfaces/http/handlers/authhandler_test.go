package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/application/auth/usecases"
	"sdc/internal/domain/admin"
	infraauth "sdc/internal/infrastructure/auth"
	"sdc/internal/infrastructure/cache"
	"sdc/internal/infrastructure/sessionstore"
	"sdc/internal/interfaces/http/middleware"
	"sdc/internal/shared/config"
	"sdc/internal/shared/logger"
)

type stubAdminRepo struct {
	byEmail map[string]*admin.Admin
	bySID   map[string]*admin.Admin
	err     error
}

func (r *stubAdminRepo) Create(ctx context.Context, adm *admin.Admin) error { return r.err }

func (r *stubAdminRepo) GetBySID(ctx context.Context, sid string) (*admin.Admin, error) {
	if r.err != nil {
		return nil, r.err
	}
	if adm, ok := r.bySID[sid]; ok {
		return adm, nil
	}
	return nil, admin.ErrAdminNotFound
}

func (r *stubAdminRepo) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	if r.err != nil {
		return nil, r.err
	}
	if adm, ok := r.byEmail[email]; ok {
		return adm, nil
	}
	return nil, admin.ErrAdminNotFound
}

func (r *stubAdminRepo) Update(ctx context.Context, adm *admin.Admin) error { return r.err }

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return assert.AnError
	}
	return nil
}

// newTestRouter wires a full session stack on in-memory backends behind a
// real gin engine, the way the server assembles it.
func newTestRouter(t *testing.T, repo admin.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	cookieCfg := config.CookieConfig{Path: "/", SameSite: "lax"}
	store := sessionstore.NewDualStore(sessionstore.NewMemoryMirror(), log)
	warnings := cache.NewMemoryWarningStateStore()
	tokenSvc := infraauth.NewSessionTokenService("test-secret")

	loginUC := usecases.NewLoginUseCase(repo, stubHasher{}, tokenSvc, store, warnings, log)
	logoutUC := usecases.NewLogoutUseCase(store, warnings, log)
	verifyUC := usecases.NewVerifySessionUseCase(repo, tokenSvc, store, log)
	statusUC := usecases.NewSessionStatusUseCase(store, warnings, log)
	extendUC := usecases.NewExtendSessionUseCase(store, warnings, log)
	dismissUC := usecases.NewDismissWarningUseCase(store, warnings, log)
	getProfileUC := usecases.NewGetProfileUseCase(repo, log)
	updateProfileUC := usecases.NewUpdateProfileUseCase(repo, log)

	handler := NewAuthHandler(
		loginUC, logoutUC, verifyUC, statusUC, extendUC, dismissUC,
		getProfileUC, updateProfileUC,
		cookieCfg, "/admin/login", log,
	)
	guard := middleware.NewSessionAuth(verifyUC, cookieCfg, "/admin/login")

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/login", handler.Login)
	auth.POST("/logout", handler.Logout)
	auth.GET("/verify", handler.Verify)
	auth.GET("/session", handler.Status)
	auth.POST("/extend", handler.Extend)
	auth.GET("/profile", guard.RequireSession(), handler.GetProfile)

	return r
}

func seedAdmin(t *testing.T) *admin.Admin {
	t.Helper()
	adm := admin.ReconstructAdmin(
		1, "adm_test1", "Test Admin", "admin@sdc.example", "",
		"hashed:secret123", time.Now().UTC(), time.Now().UTC(),
	)
	return adm
}

func doLogin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	body, _ := json.Marshal(gin.H{"email": "admin@sdc.example", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Result().Cookies()
}

func TestAuthHandler_LoginSetsSessionCookies(t *testing.T) {
	adm := seedAdmin(t)
	repo := &stubAdminRepo{
		byEmail: map[string]*admin.Admin{adm.Email(): adm},
		bySID:   map[string]*admin.Admin{adm.SID(): adm},
	}
	r := newTestRouter(t, repo)

	cookies := doLogin(t, r)

	names := map[string]bool{}
	for _, c := range cookies {
		names[c.Name] = true
	}
	assert.True(t, names[sessionstore.TokenCookie])
	assert.True(t, names[sessionstore.ProfileCookie])
	assert.True(t, names[sessionstore.LoginTimeCookie])
}

func TestAuthHandler_LoginRejectsBadPassword(t *testing.T) {
	adm := seedAdmin(t)
	repo := &stubAdminRepo{
		byEmail: map[string]*admin.Admin{adm.Email(): adm},
		bySID:   map[string]*admin.Admin{adm.SID(): adm},
	}
	r := newTestRouter(t, repo)

	body, _ := json.Marshal(gin.H{"email": "admin@sdc.example", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_LoginRepoOutageHidesDetails(t *testing.T) {
	r := newTestRouter(t, &stubAdminRepo{err: assert.AnError})

	body, _ := json.Marshal(gin.H{"email": "admin@sdc.example", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// A storage outage is not a credential rejection: generic 500, no
	// internal error text in the response body.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestAuthHandler_GuardRejectsWithoutSession(t *testing.T) {
	r := newTestRouter(t, &stubAdminRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/admin/login", resp.Redirect)
}

func TestAuthHandler_GuardAllowsActiveSession(t *testing.T) {
	adm := seedAdmin(t)
	repo := &stubAdminRepo{
		byEmail: map[string]*admin.Admin{adm.Email(): adm},
		bySID:   map[string]*admin.Admin{adm.SID(): adm},
	}
	r := newTestRouter(t, repo)

	cookies := doLogin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "admin@sdc.example")
}

func TestAuthHandler_VerifyFailsClosedOnForgedToken(t *testing.T) {
	adm := seedAdmin(t)
	repo := &stubAdminRepo{
		byEmail: map[string]*admin.Admin{adm.Email(): adm},
		bySID:   map[string]*admin.Admin{adm.SID(): adm},
	}
	r := newTestRouter(t, repo)

	cookies := doLogin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	for _, c := range cookies {
		if c.Name == sessionstore.TokenCookie {
			c.Value = "forged-token"
		}
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Rejection clears the session cookies.
	cleared := 0
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared++
		}
	}
	assert.GreaterOrEqual(t, cleared, 3)
}

func TestAuthHandler_VerifyReportsSession(t *testing.T) {
	adm := seedAdmin(t)
	repo := &stubAdminRepo{
		byEmail: map[string]*admin.Admin{adm.Email(): adm},
		bySID:   map[string]*admin.Admin{adm.SID(): adm},
	}
	r := newTestRouter(t, repo)

	cookies := doLogin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			RemainingMinutes int  `json:"remaining_minutes"`
			ServerVerified   bool `json:"server_verified"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The wall clock advances between login and verify, so the floored
	// minute count may already read 59 for a fresh session.
	assert.GreaterOrEqual(t, resp.Data.RemainingMinutes, 59)
	assert.LessOrEqual(t, resp.Data.RemainingMinutes, 60)
	assert.True(t, resp.Data.ServerVerified)
}

func TestAuthHandler_LogoutIsIdempotent(t *testing.T) {
	r := newTestRouter(t, &stubAdminRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_StatusWithoutSession(t *testing.T) {
	r := newTestRouter(t, &stubAdminRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Active bool `json:"active"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Active)
}
