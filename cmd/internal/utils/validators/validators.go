package validators

import (
	"conesites/cmd/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"reflect"
	"regexp"
	"time"
)

var ufRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// Register installs every custom tag used by the request contracts.
func Register(validate *validator.Validate) {
	mustRegister(validate, "cnpj", CNPJ)
	mustRegister(validate, "uf", UF)
	mustRegister(validate, "isodate", ISODate)
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		log.Fatalf("failed to register validator %q: %v", tag, err)
	}
}

// CNPJ accepts both the bare 14 digits and the punctuated form.
func CNPJ(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	if !ok {
		return false
	}
	return utils.IsCNPJValid(val)
}

// UF accepts a Brazilian state code, like SP or RJ.
func UF(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	if !ok {
		return false
	}
	return ufRegex.MatchString(val)
}

// ISODate accepts dates as submitted by date inputs (YYYY-MM-DD).
func ISODate(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl)
	if !ok {
		return false
	}
	_, err := time.Parse(utils.DateLayout, val)
	return err == nil
}

func stringValue(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("string validator applied to non-string type: %s", field.Kind().String())
		return "", false
	}
	return field.String(), true
}
