package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// pageParams reads ?page and ?per_page, clamping per_page to the
// allowed range.
func pageParams(c *gin.Context) (int, int) {
	page := 1
	perPage := defaultPerPage

	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}
	if raw := c.Query("per_page"); raw != "" {
		if pp, err := strconv.Atoi(raw); err == nil && pp > 0 {
			perPage = pp
			if perPage > maxPerPage {
				perPage = maxPerPage
			}
		}
	}

	return page, perPage
}

// bindingErrors flattens validator failures into a field => message map
// for the error envelope.
func bindingErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = fmt.Sprintf("The %s field is required", field)
		case "email":
			out[field] = fmt.Sprintf("The %s field must be a valid email address", field)
		case "min":
			out[field] = fmt.Sprintf("The %s field must be at least %s characters", field, fe.Param())
		case "max":
			out[field] = fmt.Sprintf("The %s field may not be greater than %s characters", field, fe.Param())
		case "oneof":
			out[field] = fmt.Sprintf("The %s field must be one of: %s", field, fe.Param())
		case "eqfield":
			out[field] = fmt.Sprintf("The %s field confirmation does not match", field)
		default:
			out[field] = fmt.Sprintf("The %s field is invalid", field)
		}
	}

	return out
}

// snakeCase maps a struct field name to its json tag form, e.g.
// TargetKind => target_kind, AvatarURL => avatar_url.
func snakeCase(field string) string {
	if field == "IDs" {
		return "ids"
	}
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (runes[i-1] < 'A' || runes[i-1] > 'Z' ||
				(i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z')) {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
