package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"stayledger/shared/daterange"
	"stayledger/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// enum is implemented by closed value sets that can tell whether they hold a known value.
type enum interface {
	IsValid() bool
}

func registerEnumValidation(field val.FieldLevel) bool {
	if e, ok := field.Field().Interface().(enum); ok {
		return e.IsValid()
	}

	return false
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := daterange.ParseDate(field.Field().String())

	return err == nil
}

func registerMonthValidation(field val.FieldLevel) bool {
	_, err := daterange.ParseMonth(field.Field().String())

	return err == nil
}

// decimalValue lets numeric tags such as gte compare decimal fields.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()

		return f
	}

	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	rules := map[string]val.Func{
		"enum":  registerEnumValidation,
		"date":  registerDateValidation,
		"month": registerMonthValidation,
		"empty": func(fl val.FieldLevel) bool { return fl.Field().IsZero() },
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
