package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/employee"
)

type employeeRepository struct {
	db *employeeTable
}

var _ employee.Repository = (*employeeRepository)(nil) // interface compliance check

func NewEmployeeRepository(db *DB) employee.Repository {
	return &employeeRepository{db: db.employees}
}

func (repo *employeeRepository) query() []employee.Employee {
	employees := make([]employee.Employee, 0, len(repo.db.table))
	for _, emp := range repo.db.table {
		employees = append(employees, *emp)
	}
	return employees
}

func (repo *employeeRepository) CheckUniqueness(ctx context.Context, id, email string, excluded ...employee.Employee) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, emp := range repo.query() {
		if isExcluded(emp, excluded) {
			continue
		}
		if id != "" && emp.ID == id {
			return employee.ErrIDExists
		}
		if email != "" && emp.Email == email {
			return employee.ErrEmailExists
		}
	}
	return nil
}

func (repo *employeeRepository) CreateEmployee(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// enforce the same unique constraints the real store's indexes do
	if _, ok := repo.db.table[emp.ID]; ok {
		return employee.Employee{}, core.NewDuplicateError(employee.Resource, "employee_id", emp.ID)
	}
	for _, existing := range repo.db.table {
		if existing.Email == emp.Email {
			return employee.Employee{}, core.NewDuplicateError(employee.Resource, "email", emp.Email)
		}
	}

	repo.db.table[emp.ID] = &emp
	return emp, nil
}

func (repo *employeeRepository) QueryAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	employees := repo.query()
	sort.Slice(employees, func(i, j int) bool { return employees[i].CreatedAt.After(employees[j].CreatedAt) })
	return employees, nil
}

func (repo *employeeRepository) FilterEmployees(ctx context.Context, filter employee.QueryFilter) ([]employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	filtered := make([]employee.Employee, 0)
	for _, emp := range repo.query() {
		if emp.Department == filter.Department {
			filtered = append(filtered, emp)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].FullName < filtered[j].FullName })
	return filtered, nil
}

func (repo *employeeRepository) GetEmployeeByID(ctx context.Context, id string) (employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if emp, ok := repo.db.table[id]; ok {
		return *emp, nil
	}
	return employee.Employee{}, core.NewNotFoundError(employee.Resource, id)
}

func (repo *employeeRepository) UpdateEmployee(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	existing, ok := repo.db.table[emp.ID]
	if !ok {
		return employee.Employee{}, core.NewNotFoundError(employee.Resource, emp.ID)
	}
	existing.FullName = emp.FullName
	existing.Email = emp.Email
	existing.Department = emp.Department
	return *existing, nil
}

func (repo *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	delete(repo.db.table, id)
	return nil
}

func (repo *employeeRepository) CountEmployees(ctx context.Context) (int64, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return int64(len(repo.db.table)), nil
}

func isExcluded(emp employee.Employee, excluded []employee.Employee) bool {
	for _, excl := range excluded {
		if emp.ID == excl.ID {
			return true
		}
	}
	return false
}
