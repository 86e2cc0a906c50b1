package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/malla/internal/domain"
	"github.com/go-playground/validator/v10"
)

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.ValidCategories[domain.Category(fl.Field().String())]
	})
	return v
}

// Validate checks every record and the id uniqueness invariant.
// Returns a slice of all validation errors found.
func Validate(records []CourseRecord) []error {
	var errs []error

	for i, rec := range records {
		errs = append(errs, validateRecord(fmt.Sprintf("courses[%d]", i), rec)...)
	}

	for _, id := range uniqueStrings(FindDuplicateIDs(records)) {
		errs = append(errs, &DuplicateIDError{ID: id})
	}

	return errs
}

func validateRecord(prefix string, rec CourseRecord) []error {
	err := recordValidator.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{fmt.Errorf("%s: %w", prefix, err)}
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s.%s is required", prefix, field))
		case "min", "max":
			errs = append(errs, fmt.Errorf("%s.%s: %v is outside [%d,%d]", prefix, field, fe.Value(), domain.MinSemester, domain.MaxSemester))
		case "category":
			errs = append(errs, fmt.Errorf("%s.%s: invalid value %q", prefix, field, fe.Value()))
		default:
			errs = append(errs, fmt.Errorf("%s.%s: failed %q check", prefix, field, fe.Tag()))
		}
	}
	return errs
}

// FindDuplicateIDs returns every id occurrence after the first one, in source
// order. An id repeated three times is therefore reported twice.
func FindDuplicateIDs(records []CourseRecord) []string {
	seen := make(map[string]bool, len(records))
	var dups []string
	for _, rec := range records {
		if seen[rec.ID] {
			dups = append(dups, rec.ID)
			continue
		}
		seen[rec.ID] = true
	}
	return dups
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
