package healthz

import (
	"context"
	"net/http"

	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger checks if the database can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

type httpError struct {
	Error string `json:"error" example:"an error occurred on the server during your request"`
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := p.Ping(c.Request.Context())
		if err != nil {
			cause := models.Cause(err)
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", cause, cause.Error())
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
