package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/attendance"
	testutil "github.com/trezcool/hrms/tests"
)

func Test_attendanceApi_attendanceMark(t *testing.T) {
	db.Reset()

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-01", attendance.StatusPresent)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(core.DateLayout)

	payload := func(id, date, status string) []byte {
		return marshallObj(t, attendance.NewAttendance{EmployeeID: id, Date: date, Status: status})
	}

	tests := []httpTest{
		{
			name: "required fields", body: marshallObj(t, attendance.NewAttendance{}),
			wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid input", map[string]string{
				"employee_id": "this field is required",
				"date":        "this field is required",
				"status":      "this field is required",
			}),
		},
		{
			name: "invalid date", body: payload("EMP001", "01/06/2021", "Present"),
			wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid input", map[string]string{
				"date": "must be a valid date in YYYY-MM-DD format",
			}),
		},
		{
			name: "future date", body: payload("EMP001", tomorrow, "Present"),
			wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid input", map[string]string{
				"date": "cannot be a future date",
			}),
		},
		{
			name: "invalid status", body: payload("EMP001", "2021-06-02", "late"),
			wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid input", map[string]string{
				"status": "must be 'Present' or 'Absent'",
			}),
		},
		{
			name: "unknown employee", body: payload("EMP404", "2021-06-02", "Present"),
			wantCode: http.StatusNotFound,
			wantData: errResp(t, "Employee 'EMP404' not found", nil),
		},
		{
			name: "already marked", body: payload("emp001", "2021-06-01", "absent"),
			wantCode: http.StatusConflict,
			wantData: errResp(t, "Attendance record with employee_id and date 'EMP001 on 2021-06-01' already exists", nil),
		},
		{name: "marked", body: payload(" emp001 ", "2021-06-02", "ABSENT"), wantCode: http.StatusCreated},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/attendance"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, tt.wantCode, rec.Body.String())
				}
				var att attendance.Attendance
				if err := json.Unmarshal(rec.Body.Bytes(), &att); err != nil {
					t.Fatalf("json.Unmarshal() failed! err %v", err)
				}
				if att.EmployeeID != "EMP001" {
					t.Errorf("EmployeeID = %q; want %q", att.EmployeeID, "EMP001")
				}
				if att.Date != "2021-06-02" {
					t.Errorf("Date = %q; want %q", att.Date, "2021-06-02")
				}
				if att.Status != attendance.StatusAbsent {
					t.Errorf("Status = %q; want %q", att.Status, attendance.StatusAbsent)
				}
				if att.CreatedAt.IsZero() {
					t.Error("CreatedAt not set")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_attendanceQuery(t *testing.T) {
	db.Reset()

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.CreateEmployee(t, empRepo, "EMP002", "Jane Doe", "jane@co.com", "Sales")

	// unique dates keep the date ordering deterministic
	att1 := testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-01", attendance.StatusPresent)
	att2 := testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-02", attendance.StatusAbsent)
	att3 := testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-03", attendance.StatusPresent)
	att4 := testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-04", attendance.StatusPresent)
	sameDay := testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-01", attendance.StatusAbsent)

	empty := make([]attendance.Attendance, 0)

	tests := []httpTest{
		{
			// newest first
			name: "Get all", path: "/attendance",
			wantData: listResp(t, "Retrieved 5 attendance records",
				[]attendance.Attendance{att4, att3, att2, att1, sameDay}, 5),
		},
		{
			name: "by date", path: "/attendance?date=2021-06-01",
			wantData: listResp(t, "Retrieved 2 attendance records", []attendance.Attendance{att1, sameDay}, 2),
		},
		{
			name: "by date (empty)", path: "/attendance?date=2030-01-01",
			wantData: listResp(t, "Retrieved 0 attendance records", empty, 0),
		},
		{
			name: "invalid date", path: "/attendance?date=lol", wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "date must be in YYYY-MM-DD format", nil),
		},
		{
			name: "skip & limit", path: "/attendance?skip=1&limit=2",
			wantData: listResp(t, "Retrieved 2 attendance records", []attendance.Attendance{att3, att2}, 2),
		},
		{
			name: "skip past the end", path: "/attendance?skip=100",
			wantData: listResp(t, "Retrieved 0 attendance records", empty, 0),
		},
		{
			name: "negative skip", path: "/attendance?skip=-1", wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid pagination", map[string]string{"skip": "must be an integer >= 0"}),
		},
		{
			name: "zero limit", path: "/attendance?limit=0", wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid pagination", map[string]string{"limit": "must be an integer between 1 and 500"}),
		},
		{
			name: "limit over max", path: "/attendance?limit=501", wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "invalid pagination", map[string]string{"limit": "must be an integer between 1 and 500"}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_attendanceQueryByEmployee(t *testing.T) {
	db.Reset()

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.CreateEmployee(t, empRepo, "EMP002", "Jane Doe", "jane@co.com", "Sales")

	att1 := testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-01", attendance.StatusPresent)
	att2 := testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-02", attendance.StatusAbsent)
	testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-01", attendance.StatusPresent)

	empty := make([]attendance.Attendance, 0)

	tests := []httpTest{
		{
			// newest first, this employee only
			name: "found", path: "/attendance/employee/emp001",
			wantData: listResp(t, "Retrieved 2 attendance records for EMP001", []attendance.Attendance{att2, att1}, 2),
		},
		{
			name: "no records", path: "/attendance/employee/EMP003",
			wantCode: http.StatusNotFound, wantData: errResp(t, "Employee 'EMP003' not found", nil),
		},
	}

	// a known employee with nothing marked yet is an empty list, not a 404
	testutil.CreateEmployee(t, empRepo, "EMP003", "Mia Brown", "mia@co.com", "Sales")
	tests = append(tests, httpTest{
		name: "employee without records", path: "/attendance/employee/EMP003",
		wantData: listResp(t, "Retrieved 0 attendance records for EMP003", empty, 0),
	})

	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_attendanceSummary(t *testing.T) {
	db.Reset()

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.CreateEmployee(t, empRepo, "EMP002", "Jane Doe", "jane@co.com", "Sales")

	for i := 1; i <= 9; i++ {
		testutil.MarkAttendance(t, attRepo, "EMP001", fmt.Sprintf("2021-06-%02d", i), attendance.StatusPresent)
	}
	testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-10", attendance.StatusAbsent)

	testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-01", attendance.StatusPresent)
	testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-02", attendance.StatusPresent)
	testutil.MarkAttendance(t, attRepo, "EMP002", "2021-06-03", attendance.StatusAbsent)

	testutil.CreateEmployee(t, empRepo, "EMP003", "Mia Brown", "mia@co.com", "Sales")

	tests := []httpTest{
		{
			name: "9 out of 10", path: "/attendance/employee/emp001/summary",
			wantData: marshallObj(t, attendance.Summary{
				EmployeeID: "EMP001", TotalDays: 10, PresentDays: 9, AbsentDays: 1, AttendancePercentage: 90,
			}),
		},
		{
			// percentage is rounded to 2 decimals
			name: "2 out of 3", path: "/attendance/employee/EMP002/summary",
			wantData: marshallObj(t, attendance.Summary{
				EmployeeID: "EMP002", TotalDays: 3, PresentDays: 2, AbsentDays: 1, AttendancePercentage: 66.67,
			}),
		},
		{
			// no records is all zeros, not a division by zero
			name: "no records", path: "/attendance/employee/EMP003/summary",
			wantData: marshallObj(t, attendance.Summary{EmployeeID: "EMP003"}),
		},
		{
			name: "unknown employee", path: "/attendance/employee/EMP404/summary",
			wantCode: http.StatusNotFound, wantData: errResp(t, "Employee 'EMP404' not found", nil),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_attendanceTodaySummary(t *testing.T) {
	db.Reset()

	today := time.Now().Format(core.DateLayout)

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.CreateEmployee(t, empRepo, "EMP002", "Jane Doe", "jane@co.com", "Sales")
	testutil.CreateEmployee(t, empRepo, "EMP003", "Mia Brown", "mia@co.com", "Sales")

	testutil.MarkAttendance(t, attRepo, "EMP001", today, attendance.StatusPresent)
	testutil.MarkAttendance(t, attRepo, "EMP002", today, attendance.StatusAbsent)
	testutil.MarkAttendance(t, attRepo, "EMP003", "2021-06-01", attendance.StatusPresent) // not today

	tt := httpTest{
		name: "today", method: http.MethodGet, path: "/attendance/today/summary", wantCode: http.StatusOK,
		wantData: marshallObj(t, attendance.TodaySummary{
			Date: today, TotalEmployees: 3, Present: 1, Absent: 1, NotMarked: 1,
		}),
	}
	t.Run(tt.name, func(t *testing.T) {
		req, rec := newRequest(tt.method, tt.path)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_attendanceApi_attendanceUpdate(t *testing.T) {
	db.Reset()

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	att := testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-01", attendance.StatusPresent)

	updated := att
	updated.Status = attendance.StatusAbsent

	tests := []httpTest{
		{
			name: "invalid status", path: "/attendance/employee/EMP001/date/2021-06-01?status=late",
			wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "status must be 'Present' or 'Absent'", nil),
		},
		{
			name: "missing status", path: "/attendance/employee/EMP001/date/2021-06-01",
			wantCode: http.StatusUnprocessableEntity,
			wantData: errResp(t, "status must be 'Present' or 'Absent'", nil),
		},
		{
			name: "not found", path: "/attendance/employee/EMP001/date/2021-06-02?status=Absent",
			wantCode: http.StatusNotFound,
			wantData: errResp(t, "Attendance record 'EMP001 on 2021-06-02' not found", nil),
		},
		{
			// status is case-insensitive, id too
			name: "updated", path: "/attendance/employee/emp001/date/2021-06-01?status=ABSENT",
			wantCode: http.StatusOK, wantData: marshallObj(t, updated),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPut

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_attendanceApi_attendanceDestroy(t *testing.T) {
	db.Reset()

	testutil.CreateEmployee(t, empRepo, "EMP001", "John Doe", "john@co.com", "Engineering")
	testutil.MarkAttendance(t, attRepo, "EMP001", "2021-06-01", attendance.StatusPresent)

	tests := []httpTest{
		{
			name: "deleted", path: "/attendance/employee/emp001/date/2021-06-01", wantCode: http.StatusOK,
			wantData: marshallObj(t, map[string]interface{}{
				"success":     true,
				"message":     "Attendance record deleted successfully",
				"employee_id": "EMP001",
				"date":        "2021-06-01",
			}),
		},
		{
			name: "delete is not idempotent", path: "/attendance/employee/EMP001/date/2021-06-01",
			wantCode: http.StatusNotFound,
			wantData: errResp(t, "Attendance record 'EMP001 on 2021-06-01' not found", nil),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodDelete

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
