package dummydb

import (
	"sync"

	"github.com/trezcool/hrms/core/attendance"
	"github.com/trezcool/hrms/core/employee"
)

type (
	DB struct {
		employees  *employeeTable
		attendance *attendanceTable
	}

	employeeTable struct {
		sync.RWMutex
		table map[string]*employee.Employee // employee_id -> record
	}

	attendanceTable struct {
		sync.RWMutex
		table map[string]*attendance.Attendance // employee_id|date -> record
	}
)

func Open() (*DB, error) {
	db := &DB{
		employees:  &employeeTable{table: make(map[string]*employee.Employee)},
		attendance: &attendanceTable{table: make(map[string]*attendance.Attendance)},
	}
	return db, nil
}

// Reset empties both tables; used between tests.
func (db *DB) Reset() {
	db.employees.Lock()
	db.employees.table = make(map[string]*employee.Employee)
	db.employees.Unlock()

	db.attendance.Lock()
	db.attendance.table = make(map[string]*attendance.Attendance)
	db.attendance.Unlock()
}

func attendanceKey(employeeID, date string) string {
	return employeeID + "|" + date
}
