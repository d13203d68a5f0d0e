package employee_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/employee"
	emailsvc "github.com/trezcool/hrms/services/email"
	logsvc "github.com/trezcool/hrms/services/logger"
	dummydb "github.com/trezcool/hrms/storage/database/dummy"
	testutil "github.com/trezcool/hrms/tests"
)

func newTestService(t *testing.T) (*employee.Service, *dummydb.DB, employee.Repository) {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open(): %v", err)
	}
	repo := dummydb.NewEmployeeRepository(db)
	attRepo := dummydb.NewAttendanceRepository(db)

	logger := logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
	logger.Enable(false)
	mailSvc := emailsvc.NewConsoleServiceMock(&core.Config{AppName: "HRMS Lite", FromEmail: "noreply@localhost"})

	return employee.NewService(repo, attRepo, mailSvc, logger), db, repo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newTestService(t)

	testutil.CreateEmployee(t, repo, "EMP001", "John Doe", "john@co.com", "Engineering")

	t.Run("duplicate id", func(t *testing.T) {
		_, err := svc.Create(ctx, employee.NewEmployee{
			ID: "EMP001", FullName: "Johnny Doe", Email: "johnny@co.com", Department: "Engineering",
		})
		var dupErr *core.DuplicateError
		if !asDuplicate(err, &dupErr) {
			t.Fatalf("want DuplicateError; got %v", err)
		}
		if dupErr.Field != "employee_id" {
			t.Errorf("Field = %q; want %q", dupErr.Field, "employee_id")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, employee.NewEmployee{
			ID: "EMP002", FullName: "Johnny Doe", Email: "john@co.com", Department: "Engineering",
		})
		var dupErr *core.DuplicateError
		if !asDuplicate(err, &dupErr) {
			t.Fatalf("want DuplicateError; got %v", err)
		}
		if dupErr.Field != "email" {
			t.Errorf("Field = %q; want %q", dupErr.Field, "email")
		}
	})

	t.Run("created", func(t *testing.T) {
		emp, err := svc.Create(ctx, employee.NewEmployee{
			ID: "EMP002", FullName: "Jane Doe", Email: "jane@co.com", Department: "Sales",
		})
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if emp.CreatedAt.IsZero() {
			t.Error("CreatedAt not set")
		}
		if !svc.Exists(ctx, "emp002") {
			t.Error("Exists() = false after Create()")
		}
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newTestService(t)

	john := testutil.CreateEmployee(t, repo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.CreateEmployee(t, repo, "EMP002", "Jane Doe", "jane@co.com", "Sales")

	t.Run("empty update returns existing", func(t *testing.T) {
		emp, err := svc.Update(ctx, "EMP001", employee.UpdateEmployee{})
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		if emp != john {
			t.Errorf("Update() = %+v; want %+v", emp, john)
		}
	})

	t.Run("own email kept", func(t *testing.T) {
		if _, err := svc.Update(ctx, "EMP001", employee.UpdateEmployee{Email: "john@co.com"}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	})

	t.Run("email collision", func(t *testing.T) {
		_, err := svc.Update(ctx, "EMP001", employee.UpdateEmployee{Email: "jane@co.com"})
		var dupErr *core.DuplicateError
		if !asDuplicate(err, &dupErr) {
			t.Fatalf("want DuplicateError; got %v", err)
		}
	})

	t.Run("partial merge", func(t *testing.T) {
		emp, err := svc.Update(ctx, "EMP001", employee.UpdateEmployee{Department: "Sales"})
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		if emp.Department != "Sales" {
			t.Errorf("Department = %q; want %q", emp.Department, "Sales")
		}
		if emp.FullName != john.FullName || emp.Email != john.Email {
			t.Error("untouched fields changed")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "EMP404", employee.UpdateEmployee{Department: "Sales"})
		if _, ok := err.(*core.NotFoundError); !ok {
			t.Fatalf("want NotFoundError; got %v", err)
		}
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, db, repo := newTestService(t)

	attRepo := dummydb.NewAttendanceRepository(db)
	testutil.CreateEmployee(t, repo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.CreateEmployee(t, repo, "EMP002", "Jane Doe", "jane@co.com", "Sales")
	testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-01", "Present")
	testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-02", "Absent")
	testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-01", "Present")

	res, err := svc.Delete(ctx, "emp001")
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if res.EmployeeID != "EMP001" {
		t.Errorf("EmployeeID = %q; want %q", res.EmployeeID, "EMP001")
	}
	if res.AttendanceRecordsDeleted != 2 {
		t.Errorf("AttendanceRecordsDeleted = %d; want 2", res.AttendanceRecordsDeleted)
	}
	if svc.Exists(ctx, "EMP001") {
		t.Error("Exists() = true after Delete()")
	}

	// other employees keep their records
	left, err := attRepo.QueryByEmployeeID(ctx, "EMP002")
	if err != nil {
		t.Fatalf("QueryByEmployeeID(): %v", err)
	}
	if len(left) != 1 {
		t.Errorf("remaining attendance = %d; want 1", len(left))
	}

	if _, err = svc.Delete(ctx, "EMP001"); err == nil {
		t.Error("Delete() expected an error on second call")
	}
}

func TestService_Query(t *testing.T) {
	ctx := context.Background()
	svc, _, repo := newTestService(t)

	zara := testutil.CreateEmployee(t, repo, "EMP001", "Zara Lee", "zara@co.com", "Engineering")
	adam := testutil.CreateEmployee(t, repo, "EMP002", "Adam Smith", "adam@co.com", "Engineering")

	t.Run("filter is normalized", func(t *testing.T) {
		emps, err := svc.Query(ctx, employee.QueryFilter{Department: " engineering "})
		if err != nil {
			t.Fatalf("Query() failed: %v", err)
		}
		// department matches come back by name
		if len(emps) != 2 || emps[0] != adam || emps[1] != zara {
			t.Errorf("Query() = %+v", emps)
		}
	})

	t.Run("unknown department", func(t *testing.T) {
		emps, err := svc.Query(ctx, employee.QueryFilter{Department: "Lol"})
		if err != nil {
			t.Fatalf("Query() failed: %v", err)
		}
		if len(emps) != 0 {
			t.Errorf("Query() = %+v; want empty", emps)
		}
	})
}

func asDuplicate(err error, target **core.DuplicateError) bool {
	dupErr, ok := err.(*core.DuplicateError)
	if ok {
		*target = dupErr
	}
	return ok
}
