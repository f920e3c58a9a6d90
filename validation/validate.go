package validation

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Issue is a single field-level validation failure, reported under the
// field's wire name rather than the Go struct field.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Bind decodes the JSON body into T and validates it against the
// struct's validate tags. On failure it writes the 400 issues envelope
// and returns false; the handler should just return.
func Bind[T any](c *gin.Context) (T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		writeIssues(c, []Issue{{Path: "body", Message: "Request body must be valid JSON."}})
		return req, false
	}
	if err := validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeIssues(c, []Issue{{Path: "body", Message: err.Error()}})
			return req, false
		}
		issues := make([]Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, Issue{Path: fe.Field(), Message: messageFor(fe)})
		}
		writeIssues(c, issues)
		return req, false
	}
	return req, true
}

func writeIssues(c *gin.Context, issues []Issue) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   "Bad Request",
		"message": "One or more fields failed validation.",
		"issues":  issues,
	})
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "uuid":
		return fe.Field() + " must be a valid UUID"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "max", "lte":
		return fe.Field() + " must be at most " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	}
	return fe.Field() + " failed validation on '" + fe.Tag() + "'"
}
