package agentform

import (
	"errors"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

var requiredMessages = map[string]string{
	"agentName":     "Agent name is required",
	"callType":      "Call type is required",
	"language":      "Language is required",
	"voice":         "Voice is required",
	"prompt":        "Prompt is required",
	"model":         "Model is required",
	"testFirstName": "First name is required",
	"testLastName":  "Last name is required",
	"testGender":    "Gender is required",
	"testPhone":     "Phone number is required",
}

const invalidPhoneMessage = "Enter a valid phone number"

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

var validate = newValidator()

// fieldErrors maps each failing field to the message shown under it.
func fieldErrors(s any) map[string]string {
	out := map[string]string{}
	err := validate.Struct(s)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		name := fe.Field()
		if fe.Tag() == "phone" {
			out[name] = invalidPhoneMessage
			continue
		}
		if msg, ok := requiredMessages[name]; ok {
			out[name] = msg
		} else {
			out[name] = name + " is invalid"
		}
	}
	return out
}
