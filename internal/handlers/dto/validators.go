package dto

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
)

var (
	cnpjPattern    = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	phoneBRPattern = regexp.MustCompile(`^(\+?55\s?)?(\(?\d{2}\)?\s?)?(9?\d{4})[-\s]?\d{4}$`)

	registerOnce sync.Once
)

// RegisterValidators registra as tags customizadas no validator do gin.
// Os nomes de campo reportados passam a ser os nomes JSON.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("cnpj", isCNPJ)
		_ = v.RegisterValidation("phonebr", isPhoneBR)
		_ = v.RegisterValidation("strongpassword", isStrongPassword)
		_ = v.RegisterValidation("role", isRole)
		_ = v.RegisterValidation("plan", isPlan)
	})
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

func isCNPJ(fl validator.FieldLevel) bool {
	return cnpjPattern.MatchString(fl.Field().String())
}

func isPhoneBR(fl validator.FieldLevel) bool {
	return phoneBRPattern.MatchString(fl.Field().String())
}

// isStrongPassword exige 8+ caracteres com minúscula, maiúscula, dígito e um de @$!%*?&
func isStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		}
	}
	return lower && upper && digit && special
}

func isRole(fl validator.FieldLevel) bool {
	_, ok := entities.ParseRole(fl.Field().String())
	return ok
}

func isPlan(fl validator.FieldLevel) bool {
	_, ok := entities.ParsePlan(fl.Field().String())
	return ok
}
