package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the directory record as the backend returns it.
type Employee struct {
	ID               string           `json:"id"`
	EmployeeCode     string           `json:"employeeCode"`
	FullName         string           `json:"fullName"`
	Email            string           `json:"email"`
	PhoneNumber      string           `json:"phoneNumber,omitempty"`
	Department       string           `json:"department,omitempty"`
	Position         string           `json:"position,omitempty"`
	Branch           string           `json:"branch,omitempty"`
	EmploymentType   EmploymentType   `json:"employmentType,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	HireDate         *time.Time       `json:"hireDate,omitempty"`
	AvatarURL        *string          `json:"avatarUrl,omitempty"`
	BaseSalary       *decimal.Decimal `json:"baseSalary,omitempty"`
}

type EmploymentType string

const (
	EmploymentTypePermanent  EmploymentType = "permanent"
	EmploymentTypeProbation  EmploymentType = "probation"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
	EmploymentTypeFreelance  EmploymentType = "freelance"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// Statuses lists every known employment status value.
var Statuses = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusResigned),
	string(EmploymentStatusTerminated),
}
