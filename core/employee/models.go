package employee

import (
	"strings"
	"time"

	"github.com/trezcool/hrms/core"
)

type Employee struct {
	ID         string    `json:"employee_id" bson:"employee_id"`
	FullName   string    `json:"full_name" bson:"full_name"`
	Email      string    `json:"email" bson:"email"` // stored lowercase
	Department string    `json:"department" bson:"department"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"` // UTC, set once
}

type NewEmployee struct {
	ID         string `json:"employee_id" validate:"required,min=2,max=20,empid"`
	FullName   string `json:"full_name" validate:"required,min=2,max=100,personname"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=2,max=50"`
}

// Validate normalizes the payload and checks it; on success all fields hold
// their canonical stored forms.
func (ne *NewEmployee) Validate() error {
	ne.ID = core.CleanString(ne.ID)
	ne.FullName = core.CollapseSpaces(ne.FullName)
	ne.Email = core.CleanString(ne.Email, true /* lower */)
	ne.Department = core.CollapseSpaces(ne.Department)

	if err := core.Validate.Struct(ne); err != nil {
		return err
	}

	ne.ID = strings.ToUpper(ne.ID)
	ne.FullName = core.TitleCase(ne.FullName)
	ne.Department = core.TitleCase(ne.Department)
	return nil
}

// UpdateEmployee is a partial update; empty fields are left untouched.
type UpdateEmployee struct {
	FullName   string `json:"full_name" validate:"omitempty,min=2,max=100,personname"`
	Email      string `json:"email" validate:"omitempty,email"`
	Department string `json:"department" validate:"omitempty,min=2,max=50"`
}

func (ue *UpdateEmployee) Validate() error {
	ue.FullName = core.CollapseSpaces(ue.FullName)
	ue.Email = core.CleanString(ue.Email, true /* lower */)
	ue.Department = core.CollapseSpaces(ue.Department)

	if err := core.Validate.Struct(ue); err != nil {
		return err
	}

	ue.FullName = core.TitleCase(ue.FullName)
	ue.Department = core.TitleCase(ue.Department)
	return nil
}

func (ue *UpdateEmployee) IsEmpty() bool {
	return ue.FullName == "" && ue.Email == "" && ue.Department == ""
}

type QueryFilter struct {
	Department string `query:"department"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Department == ""
}

// Clean normalizes the department filter to its stored form (title-cased exact match).
func (qf *QueryFilter) Clean() {
	qf.Department = core.TitleCase(core.CollapseSpaces(qf.Department))
}

type DeleteResult struct {
	EmployeeID               string `json:"employee_id"`
	AttendanceRecordsDeleted int64  `json:"attendance_records_deleted"`
}
