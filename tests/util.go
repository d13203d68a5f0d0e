package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/hrms/core/attendance"
	"github.com/trezcool/hrms/core/employee"
)

func CreateEmployee(
	t *testing.T,
	repo employee.Repository,
	id, fullName, email, department string,
	createdAt ...time.Time,
) employee.Employee {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	emp, err := repo.CreateEmployee(context.Background(), employee.Employee{
		ID:         id,
		FullName:   fullName,
		Email:      email,
		Department: department,
		CreatedAt:  tstamp,
	})
	if err != nil {
		t.Fatalf("CreateEmployee() failed: %v", err)
	}
	return emp
}

func MarkAttendance(
	t *testing.T,
	repo attendance.Repository,
	employeeID, date, status string,
	createdAt ...time.Time,
) attendance.Attendance {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	att, err := repo.CreateAttendance(context.Background(), attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CreatedAt:  tstamp,
	})
	if err != nil {
		t.Fatalf("MarkAttendance() failed: %v", err)
	}
	return att
}
