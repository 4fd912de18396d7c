// Package validate implements the client-side form validation that runs
// before any network call. Validation is schema-driven via struct tags and
// produces a field-path → message map holding the first violated rule per
// field. It never mutates shared state and has no side effects.
package validate

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FormErrorKey is the map key used for violations that are not specific to
// a single field (e.g. an empty update).
const FormErrorKey = "form"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so error keys match the wire
	// format the forms are built from.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Password complexity rules.
	_ = v.RegisterValidation("upperchar", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsUpper)
	})
	_ = v.RegisterValidation("digitchar", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
	})

	return v
}

// SignInForm is the sign-in input.
type SignInForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignUpForm is the sign-up input. ConfirmPassword must match Password;
// Name is optional.
type SignUpForm struct {
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=8,upperchar,digitchar"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Name            string `json:"name"            validate:"omitempty,max=255"`
}

// CreateTaskForm is the task-creation input.
type CreateTaskForm struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateTaskForm is the task-update input. Every field is optional, but at
// least one must be present.
type UpdateTaskForm struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

// messages maps "<field>.<rule>" to the message reported for that
// violation. Rules without an entry fall back to a generic message.
var messages = map[string]string{
	"email.required":           "Email is required",
	"email.email":              "Invalid email address",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 8 characters",
	"password.upperchar":       "Password must contain at least one uppercase letter",
	"password.digitchar":       "Password must contain at least one number",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords must match",
	"name.max":                 "Name must be less than 255 characters",
	"title.required":           "Title is required",
	"title.min":                "Title is required",
	"title.max":                "Title must be less than 255 characters",
	"description.max":          "Description must be less than 1000 characters",
}

// SignIn validates a sign-in form. The returned map is empty on success.
func SignIn(form SignInForm) map[string]string {
	return Struct(form)
}

// SignUp validates a sign-up form.
func SignUp(form SignUpForm) map[string]string {
	return Struct(form)
}

// CreateTask validates a task-creation form.
func CreateTask(form CreateTaskForm) map[string]string {
	return Struct(form)
}

// UpdateTask validates a task-update form. An update carrying no fields at
// all is rejected with a form-level error.
func UpdateTask(form UpdateTaskForm) map[string]string {
	if form.Title == nil && form.Description == nil && form.Completed == nil {
		return map[string]string{FormErrorKey: "At least one field must be provided"}
	}

	return Struct(form)
}

// Struct validates any tagged struct and returns a field-path → message
// map holding the first violated rule per field. Paths for nested fields
// are dot-joined JSON names.
func Struct(form interface{}) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs[FormErrorKey] = "Validation failed"

		return errs
	}

	for _, fieldErr := range validationErrs {
		path := fieldPath(fieldErr)
		if _, seen := errs[path]; seen {
			continue
		}

		errs[path] = message(path, fieldErr)
	}

	return errs
}

// fieldPath strips the root struct name from the namespace, leaving the
// dot-joined JSON field path.
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return fieldErr.Field()
}

func message(path string, fieldErr validator.FieldError) string {
	if msg, ok := messages[path+"."+fieldErr.Tag()]; ok {
		return msg
	}

	// Leaf field name without any parent path.
	field := path
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		field = path[idx+1:]
	}

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " is too long"
	case "min":
		return field + " is too short"
	default:
		return field + " is invalid"
	}
}
