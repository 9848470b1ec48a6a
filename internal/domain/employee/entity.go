package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID               string
	CompanyID        string
	FullName         string
	Department       string
	EmployeeType     *Type
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Type string

const (
	TypeOffice   Type = "office"
	TypeWorkshop Type = "workshop"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// officeDepartmentMarkers identify departments treated as office staff when
// no explicit employee type is recorded.
var officeDepartmentMarkers = []string{"office", "admin", "management"}

// ResolvedType returns the explicit employee type when present, otherwise
// infers it from the department text. Anything not recognizably office-side
// defaults to workshop.
func (e Employee) ResolvedType() Type {
	if e.EmployeeType != nil && (*e.EmployeeType == TypeOffice || *e.EmployeeType == TypeWorkshop) {
		return *e.EmployeeType
	}
	dept := strings.ToLower(e.Department)
	for _, marker := range officeDepartmentMarkers {
		if strings.Contains(dept, marker) {
			return TypeOffice
		}
	}
	return TypeWorkshop
}
