package sessionstore

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sdc/internal/shared/config"
)

// GinCarrier adapts a gin request/response pair to the session carrier
// contract. Cleared cookies in the same request are tracked so a read after
// a clear sees them as absent.
type GinCarrier struct {
	c       *gin.Context
	cfg     config.CookieConfig
	cleared map[string]bool
}

func NewGinCarrier(c *gin.Context, cfg config.CookieConfig) *GinCarrier {
	return &GinCarrier{c: c, cfg: cfg, cleared: make(map[string]bool)}
}

func (g *GinCarrier) GetCookie(name string) (string, bool) {
	if g.cleared[name] {
		return "", false
	}
	value, err := g.c.Cookie(name)
	if err != nil {
		return "", false
	}
	return value, true
}

func (g *GinCarrier) SetCookie(name, value string, maxAge int) {
	delete(g.cleared, name)
	g.c.SetSameSite(g.sameSite())
	g.c.SetCookie(name, value, maxAge, g.path(), g.cfg.Domain, g.cfg.Secure, true)
}

func (g *GinCarrier) ClearCookie(name string) {
	g.cleared[name] = true
	g.c.SetSameSite(g.sameSite())
	g.c.SetCookie(name, "", -1, g.path(), g.cfg.Domain, g.cfg.Secure, true)
}

func (g *GinCarrier) path() string {
	if g.cfg.Path == "" {
		return "/"
	}
	return g.cfg.Path
}

func (g *GinCarrier) sameSite() http.SameSite {
	switch g.cfg.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
