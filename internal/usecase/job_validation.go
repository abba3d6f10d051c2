package usecase

import (
	"errors"
	"reflect"
	"strings"

	"jobboard/internal/domain/job"

	"github.com/go-playground/validator/v10"
)

type jobPayload struct {
	Title          string `json:"title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Location       string `json:"location" validate:"required"`
	JobType        string `json:"jobType" validate:"required,oneof=full-time part-time contract internship"`
	Description    string `json:"description" validate:"required"`
	ApplicationURL string `json:"applicationUrl" validate:"omitempty,url"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var invalidMessages = map[string]string{
	"jobType":        "Invalid job type",
	"applicationUrl": "Invalid application url",
}

// validateDraft reports every blank required field first; invalid values are
// only reported once nothing is missing.
func validateDraft(d job.Draft) error {
	err := validate.Struct(jobPayload{
		Title:          d.Title,
		Company:        d.Company,
		Location:       d.Location,
		JobType:        string(d.JobType),
		Description:    d.Description,
		ApplicationURL: d.ApplicationURL,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fe.Field())
	}

	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	msgs := make([]string, 0, len(invalid))
	for _, f := range invalid {
		if m, ok := invalidMessages[f]; ok {
			msgs = append(msgs, m)
			continue
		}
		msgs = append(msgs, "Invalid "+f)
	}
	return &ValidationError{InvalidFields: invalid, Message: strings.Join(msgs, "; ")}
}

func normalizeRequirements(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
