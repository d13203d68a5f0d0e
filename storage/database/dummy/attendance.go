package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) query() []attendance.Attendance {
	records := make([]attendance.Attendance, 0, len(repo.db.table))
	for _, att := range repo.db.table {
		records = append(records, *att)
	}
	return records
}

func (repo *attendanceRepository) CreateAttendance(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := attendanceKey(att.EmployeeID, att.Date)
	if _, ok := repo.db.table[key]; ok {
		return attendance.Attendance{}, attendance.NewDuplicateError(att.EmployeeID, att.Date)
	}
	repo.db.table[key] = &att
	return att, nil
}

func (repo *attendanceRepository) GetAttendance(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if att, ok := repo.db.table[attendanceKey(employeeID, date)]; ok {
		return *att, nil
	}
	return attendance.Attendance{}, core.NewNotFoundError(attendance.Resource, employeeID+" on "+date)
}

func (repo *attendanceRepository) QueryByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, att := range repo.query() {
		if att.EmployeeID == employeeID {
			records = append(records, att)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	return records, nil
}

func (repo *attendanceRepository) QueryByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Attendance, 0)
	for _, att := range repo.query() {
		if att.Date == date {
			records = append(records, att)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })
	return records, nil
}

func (repo *attendanceRepository) QueryAllAttendance(ctx context.Context, skip, limit int64) ([]attendance.Attendance, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := repo.query()
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})

	if skip >= int64(len(records)) {
		return []attendance.Attendance{}, nil
	}
	records = records[skip:]
	if limit < int64(len(records)) {
		records = records[:limit]
	}
	return records, nil
}

func (repo *attendanceRepository) CountAttendance(ctx context.Context, employeeID, status string) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var count int64
	for _, att := range repo.query() {
		if att.EmployeeID == employeeID && (status == "" || att.Status == status) {
			count++
		}
	}
	return count, nil
}

func (repo *attendanceRepository) CountByDateAndStatus(ctx context.Context, date, status string) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var count int64
	for _, att := range repo.query() {
		if att.Date == date && att.Status == status {
			count++
		}
	}
	return count, nil
}

func (repo *attendanceRepository) UpdateAttendanceStatus(ctx context.Context, employeeID, date, status string) (attendance.Attendance, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	att, ok := repo.db.table[attendanceKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, core.NewNotFoundError(attendance.Resource, employeeID+" on "+date)
	}
	att.Status = status
	return *att, nil
}

func (repo *attendanceRepository) DeleteAttendance(ctx context.Context, employeeID, date string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	delete(repo.db.table, attendanceKey(employeeID, date))
	return nil
}

func (repo *attendanceRepository) DeleteAttendanceByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var count int64
	for key, att := range repo.db.table {
		if att.EmployeeID == employeeID {
			delete(repo.db.table, key)
			count++
		}
	}
	return count, nil
}
