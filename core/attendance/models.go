package attendance

import (
	"strings"
	"time"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/employee"
)

// Statuses
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// CanonicalStatus maps a case-insensitive status to its canonical form;
// unknown values are returned unchanged.
func CanonicalStatus(s string) string {
	switch strings.ToLower(core.CleanString(s)) {
	case "present":
		return StatusPresent
	case "absent":
		return StatusAbsent
	}
	return s
}

type Attendance struct {
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	Date       string    `json:"date" bson:"date"` // YYYY-MM-DD
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"` // UTC, set once
}

type NewAttendance struct {
	EmployeeID string `json:"employee_id" validate:"required,min=2,max=20,empid"`
	Date       string `json:"date" validate:"required,dateonly,pastdate"`
	Status     string `json:"status" validate:"required,attstatus"`
}

// Validate normalizes the payload and checks it; future dates are rejected.
func (na *NewAttendance) Validate() error {
	na.EmployeeID = core.CleanString(na.EmployeeID)
	na.Date = core.CleanString(na.Date)
	na.Status = core.CleanString(na.Status)

	if err := core.Validate.Struct(na); err != nil {
		return err
	}

	na.EmployeeID = employee.CleanID(na.EmployeeID)
	na.Status = CanonicalStatus(na.Status)
	return nil
}

type Summary struct {
	EmployeeID           string  `json:"employee_id"`
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type TodaySummary struct {
	Date           string `json:"date"`
	TotalEmployees int64  `json:"total_employees"`
	Present        int64  `json:"present"`
	Absent         int64  `json:"absent"`
	// NotMarked goes negative when attendance rows reference employees that no
	// longer exist; reported as-is.
	NotMarked int64 `json:"not_marked"`
}

type DeleteResult struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}
