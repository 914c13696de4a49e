package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"bytebank-api/model"

	"github.com/go-playground/validator/v10"
	"github.com/paemuri/brdoc"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return brdoc.IsCPF(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateStruct runs the struct tags of payload and reports violations as ErrDadosInvalidos.
func ValidateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", model.ErrDadosInvalidos, strings.Join(fields, ", "))
}

// Decode reads the JSON body into payload without validating it.
func Decode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Corpo da requisição inválido", fmt.Errorf("%w: %v", model.ErrDadosInvalidos, err))
	}
	return nil
}

func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := Decode(r, payload); err != nil {
		return err
	}

	if err := ValidateStruct(payload); err != nil {
		return NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	return nil
}
