package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

// ListFilter narrows GET /employees server-side. The department, status,
// type and search criteria are also applied client-side through the list
// engine so stale collections stay consistent with the active filters.
type ListFilter struct {
	Department     string
	EmploymentType string
	Status         string
	Branch         string
	Search         string

	SortBy    string
	SortOrder string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, resigned, terminated",
		})
	}

	if f.EmploymentType != "" {
		validTypes := []string{"permanent", "probation", "contract", "internship", "freelance"}
		if !validator.IsInSlice(f.EmploymentType, validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "employmentType",
				Message: "employmentType must be one of: permanent, probation, contract, internship, freelance",
			})
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"full_name", "employee_code", "department", "hire_date", "base_salary"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: full_name, employee_code, department, hire_date, base_salary",
			})
		}
	} else {
		f.SortBy = "full_name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
