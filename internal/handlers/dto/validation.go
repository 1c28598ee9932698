package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/character-api/internal/domain/entities"
)

var registerOnce sync.Once

// RegisterValidations registra regras customizadas no validator do Gin.
// Usa o nome JSON do campo nas mensagens de erro.
func RegisterValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected validator engine")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		err = v.RegisterValidation("notblank", notBlank)
	})
	return err
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// notBlank rejeita strings compostas apenas de espaços
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// BindingErrors converte o erro de ShouldBindJSON em erros de campo.
// Retorna também uma mensagem resumida para o envelope.
func BindingErrors(err error) (string, []ValidationError) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make([]ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, ValidationError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
				Tag:     fe.Tag(),
				Value:   fmt.Sprint(fe.Value()),
			})
		}
		return out[0].Message, out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg := fmt.Sprintf("Field '%s' must be a %s", typeErr.Field, typeName(typeErr.Type))
		return msg, []ValidationError{{Field: typeErr.Field, Message: msg, Tag: "type"}}
	}

	if errors.Is(err, io.EOF) {
		return "Request body is required", nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Request body is not valid JSON", nil
	}

	return "Invalid request", nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("Field '%s' is required and must be a non-empty string", fe.Field())
	case "gte", "lte":
		return fmt.Sprintf("Field '%s' must be between %.1f and %.1f",
			fe.Field(), entities.MinTemperature, entities.MaxTemperature)
	default:
		return fmt.Sprintf("Field '%s' is invalid", fe.Field())
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "valid number"
	case reflect.String:
		return "string"
	default:
		return "valid " + t.Kind().String()
	}
}
