// internal/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sproutlabs/sprout-backend/internal/i18n"
	"github.com/sproutlabs/sprout-backend/internal/models"
)

// ProfileResolver maps an optional profile id header to a simulated profile.
// An empty id resolves to the session's current profile.
type ProfileResolver interface {
	Resolve(id string) (*models.Profile, error)
}

// SessionMiddleware resolves the simulated identity for the request. There
// is no authentication in this deployment; identity switching is entirely
// local, so the profile id travels as a plain header.
func SessionMiddleware(resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = "en"
		}

		profile, err := resolver.Resolve(c.GetHeader("X-Profile-ID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": i18n.T(lang, i18n.KeyProfileNotFound),
			})
			c.Abort()
			return
		}

		c.Set("profile", profile)
		c.Set("profile_id", profile.ID.String())
		c.Next()
	}
}

// OwnerRequired gates the admin surface on the profile's role.
func OwnerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = "en"
		}

		profile, exists := c.Get("profile")
		p, ok := profile.(*models.Profile)
		if !exists || !ok || !p.IsOwner() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": i18n.T(lang, i18n.KeyAdminAccessDenied),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
