package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"projecthub/internal/domain"
)

type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (h *Handler) msg(c *gin.Context, key string, data map[string]any) string {
	return h.t.T(c.GetHeader("Accept-Language"), key, data)
}

// bind decodes the JSON body into dst and validates it, writing a 400 response
// on failure.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.msg(c, "errors.malformed_body", nil)})
		return false
	}

	fields := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		data := map[string]any{"Field": fe.Field(), "Param": fe.Param()}
		key := "validation." + fe.Tag()
		text := h.msg(c, key, data)
		if text == key {
			text = h.msg(c, "validation.invalid", data)
		}
		fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag(), Message: text})
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": h.msg(c, "errors.invalid_data", nil),
		"errors":  fields,
	})
	return false
}

// fail maps a use case error to its HTTP response. Errors without a public
// mapping are logged and answered with the route's generic message.
func (h *Handler) fail(c *gin.Context, err error, failureKey string) {
	var refErr *domain.ReferenceError
	switch {
	case errors.As(err, &refErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": h.msg(c, "errors.invalid_data", nil),
			"errors": []fieldError{{
				Field:   refErr.Field,
				Rule:    "exists",
				Message: h.msg(c, "errors.invalid_reference", map[string]any{"Field": refErr.Field}),
			}},
		})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": h.msg(c, "errors."+domain.Code(err), nil)})
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"message": h.msg(c, "errors."+domain.Code(err), nil)})
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidSort):
		c.JSON(http.StatusBadRequest, gin.H{"message": h.msg(c, "errors."+domain.Code(err), nil)})
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": h.msg(c, failureKey, nil)})
	}
}
