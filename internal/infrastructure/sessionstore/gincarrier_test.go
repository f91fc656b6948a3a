package sessionstore

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/shared/config"
)

func newTestCarrier(t *testing.T, reqCookies map[string]string) (*GinCarrier, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range reqCookies {
		c.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return NewGinCarrier(c, config.CookieConfig{Path: "/", SameSite: "lax"}), w
}

func TestGinCarrierReadsRequestCookies(t *testing.T) {
	car, _ := newTestCarrier(t, map[string]string{TokenCookie: "tok-1"})

	value, ok := car.GetCookie(TokenCookie)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", value)

	_, ok = car.GetCookie(ProfileCookie)
	assert.False(t, ok)
}

func TestGinCarrierSetCookieWritesHeader(t *testing.T) {
	car, w := newTestCarrier(t, nil)

	car.SetCookie(TokenCookie, "tok-1", 3600)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookie, cookies[0].Name)
	assert.Equal(t, "tok-1", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestGinCarrierClearHidesCookieForTheRequest(t *testing.T) {
	car, w := newTestCarrier(t, map[string]string{TokenCookie: "tok-1"})

	car.ClearCookie(TokenCookie)

	// The request still carries the cookie, but a read after the clear
	// must see it as absent.
	_, ok := car.GetCookie(TokenCookie)
	assert.False(t, ok)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}
