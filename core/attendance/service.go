package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/employee"
)

const Resource = "Attendance record"

// pagination bounds for QueryAll
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

type (
	Repository interface {
		// CreateAttendance persists the record; a (employee_id, date) collision
		// at the storage layer surfaces as a core.DuplicateError.
		CreateAttendance(ctx context.Context, att Attendance) (Attendance, error)
		GetAttendance(ctx context.Context, employeeID, date string) (Attendance, error)
		// QueryByEmployeeID returns the employee's records ordered by descending date.
		QueryByEmployeeID(ctx context.Context, employeeID string) ([]Attendance, error)
		// QueryByDate returns the date's records ordered by ascending employee id.
		QueryByDate(ctx context.Context, date string) ([]Attendance, error)
		// QueryAllAttendance returns records ordered by descending date, then ascending employee id.
		QueryAllAttendance(ctx context.Context, skip, limit int64) ([]Attendance, error)
		// CountAttendance counts an employee's records; an empty status counts all of them.
		CountAttendance(ctx context.Context, employeeID, status string) (int64, error)
		CountByDateAndStatus(ctx context.Context, date, status string) (int64, error)
		UpdateAttendanceStatus(ctx context.Context, employeeID, date, status string) (Attendance, error)
		DeleteAttendance(ctx context.Context, employeeID, date string) error
		DeleteAttendanceByEmployeeID(ctx context.Context, employeeID string) (int64, error)
	}

	// EmployeeDirectory is the slice of the employee store this service needs
	// for foreign-key checks and headcounts.
	EmployeeDirectory interface {
		GetEmployeeByID(ctx context.Context, id string) (employee.Employee, error)
		CountEmployees(ctx context.Context) (int64, error)
	}

	Service struct {
		repo      Repository
		employees EmployeeDirectory
		logger    core.Logger
	}
)

func NewService(repo Repository, employees EmployeeDirectory, logger core.Logger) *Service {
	return &Service{repo: repo, employees: employees, logger: logger}
}

// Mark records attendance for an employee on a date. The duplicate check here
// is a fast path; the storage layer's unique (employee_id, date) index is the
// actual enforcement under concurrent calls.
func (svc *Service) Mark(ctx context.Context, na NewAttendance) (Attendance, error) {
	if _, err := svc.employees.GetEmployeeByID(ctx, na.EmployeeID); err != nil {
		return Attendance{}, err
	}

	if _, err := svc.repo.GetAttendance(ctx, na.EmployeeID, na.Date); err == nil {
		return Attendance{}, NewDuplicateError(na.EmployeeID, na.Date)
	} else if !IsNotFound(err) {
		return Attendance{}, err
	}

	att := Attendance{
		EmployeeID: na.EmployeeID,
		Date:       na.Date,
		Status:     na.Status,
		CreatedAt:  time.Now().UTC(),
	}
	att, err := svc.repo.CreateAttendance(ctx, att)
	if err != nil {
		return Attendance{}, err
	}

	svc.logger.Info(fmt.Sprintf("attendance marked: %s on %s - %s", att.EmployeeID, att.Date, att.Status))
	return att, nil
}

func (svc *Service) QueryByEmployee(ctx context.Context, employeeID string) ([]Attendance, error) {
	employeeID = employee.CleanID(employeeID)
	if _, err := svc.employees.GetEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return svc.repo.QueryByEmployeeID(ctx, employeeID)
}

// QueryByDate lists records for a date. Unlike Mark, future dates are allowed:
// this is a query, not a write.
func (svc *Service) QueryByDate(ctx context.Context, date string) ([]Attendance, error) {
	date = core.CleanString(date)
	if _, err := time.Parse(core.DateLayout, date); err != nil {
		return nil, core.NewValidationError(errors.New("date must be in YYYY-MM-DD format"))
	}
	return svc.repo.QueryByDate(ctx, date)
}

func (svc *Service) QueryAll(ctx context.Context, skip, limit int64) ([]Attendance, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return svc.repo.QueryAllAttendance(ctx, skip, limit)
}

func (svc *Service) Summarize(ctx context.Context, employeeID string) (Summary, error) {
	employeeID = employee.CleanID(employeeID)
	if _, err := svc.employees.GetEmployeeByID(ctx, employeeID); err != nil {
		return Summary{}, err
	}

	total, err := svc.repo.CountAttendance(ctx, employeeID, "")
	if err != nil {
		return Summary{}, err
	}
	present, err := svc.repo.CountAttendance(ctx, employeeID, StatusPresent)
	if err != nil {
		return Summary{}, err
	}

	var pct float64
	if total > 0 {
		pct = round2(float64(present) / float64(total) * 100)
	}
	return Summary{
		EmployeeID:           employeeID,
		TotalDays:            total,
		PresentDays:          present,
		AbsentDays:           total - present,
		AttendancePercentage: pct,
	}, nil
}

func (svc *Service) SummarizeToday(ctx context.Context) (TodaySummary, error) {
	today := time.Now().Format(core.DateLayout)

	totalEmployees, err := svc.employees.CountEmployees(ctx)
	if err != nil {
		return TodaySummary{}, err
	}
	present, err := svc.repo.CountByDateAndStatus(ctx, today, StatusPresent)
	if err != nil {
		return TodaySummary{}, err
	}
	absent, err := svc.repo.CountByDateAndStatus(ctx, today, StatusAbsent)
	if err != nil {
		return TodaySummary{}, err
	}

	return TodaySummary{
		Date:           today,
		TotalEmployees: totalEmployees,
		Present:        present,
		Absent:         absent,
		NotMarked:      totalEmployees - present - absent,
	}, nil
}

func (svc *Service) UpdateStatus(ctx context.Context, employeeID, date, status string) (Attendance, error) {
	status = CanonicalStatus(status)
	if status != StatusPresent && status != StatusAbsent {
		return Attendance{}, core.NewValidationError(errors.New("status must be 'Present' or 'Absent'"))
	}

	employeeID = employee.CleanID(employeeID)
	date = core.CleanString(date)
	if _, err := svc.repo.GetAttendance(ctx, employeeID, date); err != nil {
		return Attendance{}, err
	}

	att, err := svc.repo.UpdateAttendanceStatus(ctx, employeeID, date, status)
	if err != nil {
		return Attendance{}, err
	}
	svc.logger.Info(fmt.Sprintf("attendance updated: %s on %s - %s", employeeID, date, status))
	return att, nil
}

func (svc *Service) Delete(ctx context.Context, employeeID, date string) (DeleteResult, error) {
	employeeID = employee.CleanID(employeeID)
	date = core.CleanString(date)
	if _, err := svc.repo.GetAttendance(ctx, employeeID, date); err != nil {
		return DeleteResult{}, err
	}
	if err := svc.repo.DeleteAttendance(ctx, employeeID, date); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{EmployeeID: employeeID, Date: date}, nil
}

// IsNotFound reports whether err is a core.NotFoundError.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*core.NotFoundError)
	return ok
}

// NewDuplicateError builds the (employee_id, date) collision error; repositories
// use it too when the storage-layer unique index rejects an insert.
func NewDuplicateError(employeeID, date string) error {
	return core.NewDuplicateError(Resource, "employee_id and date", employeeID+" on "+date)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
