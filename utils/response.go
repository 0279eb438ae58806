// utils/response.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every endpoint answers with this envelope: {success, data} or
// {success, error}.

func RespondWithData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// BindingErrorMessage flattens a ShouldBindJSON failure into the single
// human-readable string the envelope carries. Field-level detail survives only
// as the joined message.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldErrorMessage(fe))
		}
		return strings.Join(messages, ", ")
	}

	var jsonErr *json.UnmarshalTypeError
	if errors.As(err, &jsonErr) {
		return fmt.Sprintf("%s alanı geçersiz türde", lowerFirst(jsonErr.Field))
	}

	return "Geçersiz istek gövdesi"
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s zorunludur", field)
	case "email":
		return "Geçersiz e-posta adresi"
	case "min":
		return fmt.Sprintf("%s en az %s karakter olmalıdır", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s en fazla %s karakter olmalıdır", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s geçersiz bir değere sahip", field)
	case "eqfield":
		return "Şifreler eşleşmiyor"
	default:
		return fmt.Sprintf("%s geçersiz", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
