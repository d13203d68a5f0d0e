package employee

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/trezcool/hrms/core"
)

const Resource = "Employee"

var (
	// errors
	ErrIDExists    = errors.New("an employee with this employee_id already exists")
	ErrEmailExists = errors.New("an employee with this email already exists")
)

type (
	Repository interface {
		// CheckUniqueness returns ErrIDExists or ErrEmailExists on collision;
		// the id check runs before the email check. Empty values are skipped
		// and excluded employees do not count as collisions.
		CheckUniqueness(ctx context.Context, id, email string, excluded ...Employee) error
		CreateEmployee(ctx context.Context, emp Employee) (Employee, error)
		// QueryAllEmployees returns all employees ordered by descending creation time.
		QueryAllEmployees(ctx context.Context) ([]Employee, error)
		// FilterEmployees returns employees matching the filter ordered by ascending full name.
		FilterEmployees(ctx context.Context, filter QueryFilter) ([]Employee, error)
		GetEmployeeByID(ctx context.Context, id string) (Employee, error)
		UpdateEmployee(ctx context.Context, emp Employee) (Employee, error)
		DeleteEmployee(ctx context.Context, id string) error
		CountEmployees(ctx context.Context) (int64, error)
	}

	// AttendanceRemover is the slice of the attendance store needed for cascade deletes.
	AttendanceRemover interface {
		DeleteAttendanceByEmployeeID(ctx context.Context, employeeID string) (int64, error)
	}

	Service struct {
		repo    Repository
		attRepo AttendanceRemover
		mailSvc core.EmailService
		logger  core.Logger
	}
)

func NewService(repo Repository, attRepo AttendanceRemover, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{repo: repo, attRepo: attRepo, mailSvc: mailSvc, logger: logger}
}

func (svc *Service) checkUniqueness(ctx context.Context, id, email string, excluded ...Employee) error {
	if err := svc.repo.CheckUniqueness(ctx, id, email, excluded...); err != nil {
		switch err {
		case ErrIDExists:
			return core.NewDuplicateError(Resource, "employee_id", id)
		case ErrEmailExists:
			return core.NewDuplicateError(Resource, "email", email)
		default:
			return err
		}
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, ne NewEmployee) (Employee, error) {
	if err := svc.checkUniqueness(ctx, ne.ID, ne.Email); err != nil {
		return Employee{}, err
	}

	emp := Employee{
		ID:         ne.ID,
		FullName:   ne.FullName,
		Email:      ne.Email,
		Department: ne.Department,
		CreatedAt:  time.Now().UTC(),
	}
	emp, err := svc.repo.CreateEmployee(ctx, emp)
	if err != nil {
		return Employee{}, err
	}

	svc.logger.Info("employee created: " + emp.ID)
	svc.sendWelcomeEmail(emp)
	return emp, nil
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Employee, error) {
	filter.Clean()
	if filter.IsEmpty() {
		return svc.repo.QueryAllEmployees(ctx)
	}
	return svc.repo.FilterEmployees(ctx, filter)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	return svc.repo.GetEmployeeByID(ctx, CleanID(id))
}

func (svc *Service) Update(ctx context.Context, id string, ue UpdateEmployee) (Employee, error) {
	id = CleanID(id)
	existing, err := svc.repo.GetEmployeeByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if ue.IsEmpty() {
		return existing, nil
	}

	if ue.Email != "" && ue.Email != existing.Email {
		if err := svc.checkUniqueness(ctx, "", ue.Email, existing); err != nil {
			return Employee{}, err
		}
	}

	emp := existing
	if ue.FullName != "" {
		emp.FullName = ue.FullName
	}
	if ue.Email != "" {
		emp.Email = ue.Email
	}
	if ue.Department != "" {
		emp.Department = ue.Department
	}
	return svc.repo.UpdateEmployee(ctx, emp)
}

// Delete removes the employee and all their attendance records. The two steps
// are not atomic; a crash in between may leave orphaned attendance records.
func (svc *Service) Delete(ctx context.Context, id string) (DeleteResult, error) {
	id = CleanID(id)
	if _, err := svc.repo.GetEmployeeByID(ctx, id); err != nil {
		return DeleteResult{}, err
	}

	count, err := svc.attRepo.DeleteAttendanceByEmployeeID(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if err := svc.repo.DeleteEmployee(ctx, id); err != nil {
		return DeleteResult{}, err
	}

	svc.logger.Info(fmt.Sprintf("employee deleted: %s, attendance records deleted: %d", id, count))
	return DeleteResult{EmployeeID: id, AttendanceRecordsDeleted: count}, nil
}

// Exists reports whether an employee with this id exists. Any underlying fault
// is swallowed and reported as false; callers must not treat false as proof of
// absence under fault conditions.
func (svc *Service) Exists(ctx context.Context, id string) bool {
	_, err := svc.repo.GetEmployeeByID(ctx, CleanID(id))
	return err == nil
}

func (svc *Service) sendWelcomeEmail(emp Employee) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: emp.FullName, Address: emp.Email}},
		Subject: "Welcome aboard!",
		BodyStr: fmt.Sprintf(
			"Hi %s,\n\nYour employee record (%s) has been created in the %s department.\n",
			emp.FullName, emp.ID, emp.Department,
		),
	})
}

// CleanID normalizes a raw employee id to its stored form.
func CleanID(id string) string {
	return strings.ToUpper(core.CleanString(id))
}
