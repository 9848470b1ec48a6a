package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_ResolvedType(t *testing.T) {
	office := TypeOffice
	workshop := TypeWorkshop

	cases := []struct {
		name       string
		explicit   *Type
		department string
		want       Type
	}{
		{"explicit office wins over workshop department", &office, "Assembly Line", TypeOffice},
		{"explicit workshop wins over office department", &workshop, "Front Office", TypeWorkshop},
		{"office keyword in department", nil, "Back Office", TypeOffice},
		{"admin keyword in department", nil, "HR Administration", TypeOffice},
		{"management keyword in department", nil, "Plant Management", TypeOffice},
		{"case insensitive match", nil, "OFFICE OF OPERATIONS", TypeOffice},
		{"unknown department defaults to workshop", nil, "Welding", TypeWorkshop},
		{"empty department defaults to workshop", nil, "", TypeWorkshop},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Employee{Department: c.department, EmployeeType: c.explicit}
			assert.Equal(t, c.want, e.ResolvedType())
		})
	}
}
