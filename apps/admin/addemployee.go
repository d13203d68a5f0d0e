package main

import (
	"context"
	"time"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/employee"
)

// addEmployee updates or creates an employee.Employee
func (cli *commandLine) addEmployee(id, name, email, dept string) error {
	ne := employee.NewEmployee{ID: id, FullName: name, Email: email, Department: dept}
	if err := ne.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	existing, err := cli.empRepo.GetEmployeeByID(ctx, ne.ID)
	if err != nil {
		if _, ok := err.(*core.NotFoundError); !ok {
			return err
		}
		if err = cli.empRepo.CheckUniqueness(ctx, ne.ID, ne.Email); err != nil {
			return err
		}
		_, err = cli.empRepo.CreateEmployee(ctx, employee.Employee{
			ID:         ne.ID,
			FullName:   ne.FullName,
			Email:      ne.Email,
			Department: ne.Department,
			CreatedAt:  time.Now().UTC(),
		})
		return err
	}

	if err = cli.empRepo.CheckUniqueness(ctx, "", ne.Email, existing); err != nil {
		return err
	}
	existing.FullName = ne.FullName
	existing.Email = ne.Email
	existing.Department = ne.Department
	_, err = cli.empRepo.UpdateEmployee(ctx, existing)
	return err
}
