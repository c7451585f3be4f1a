package employee

import (
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/listquery"
)

// Schema wires Employee into the list engine: equality filters for the
// dropdown columns, substring search over name, email and code.
func Schema() listquery.Schema[Employee] {
	return listquery.Schema[Employee]{
		ID: func(e Employee) string { return e.ID },
		Fields: map[string]func(Employee) (string, bool){
			"department": func(e Employee) (string, bool) {
				return e.Department, e.Department != ""
			},
			"status": func(e Employee) (string, bool) {
				return string(e.EmploymentStatus), e.EmploymentStatus != ""
			},
			"employment_type": func(e Employee) (string, bool) {
				return string(e.EmploymentType), e.EmploymentType != ""
			},
			"branch": func(e Employee) (string, bool) {
				return e.Branch, e.Branch != ""
			},
		},
		Search: []func(Employee) string{
			func(e Employee) string { return e.FullName },
			func(e Employee) string { return e.Email },
			func(e Employee) string { return e.EmployeeCode },
		},
		Sort: map[string]func(Employee) any{
			"full_name":     func(e Employee) any { return e.FullName },
			"employee_code": func(e Employee) any { return e.EmployeeCode },
			"department":    func(e Employee) any { return e.Department },
			"hire_date": func(e Employee) any {
				if e.HireDate == nil {
					return nil
				}
				return *e.HireDate
			},
			"base_salary": func(e Employee) any {
				if e.BaseSalary == nil {
					return nil
				}
				return e.BaseSalary.InexactFloat64()
			},
		},
		Status: func(e Employee) string { return string(e.EmploymentStatus) },
	}
}
