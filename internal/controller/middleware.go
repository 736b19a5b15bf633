package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studypulse/backend/internal/dto"
)

// studentIDKey is where StudentAuth stores the resolved identity.
const studentIDKey = "studentID"

// StudentAuth resolves the student identity placed on the request by the
// upstream session layer (X-Student-ID header). Requests without a valid
// identity are rejected before any handler runs.
func StudentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Student-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "no student identity on request"})
			return
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			log.Warn().Str("header", raw).Msg("Malformed X-Student-ID header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid student identity"})
			return
		}
		c.Set(studentIDKey, uint(id))
		c.Next()
	}
}

// currentStudentID reads the identity StudentAuth stored on the context.
func currentStudentID(c *gin.Context) uint {
	if v, ok := c.Get(studentIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
