package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trezcool/hrms/core/employee"
	"github.com/trezcool/hrms/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db      *mongo.Database
	empRepo employee.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addemployee -id ID -name NAME -email EMAIL -department DEPARTMENT - add or update an employee")
	fmt.Println("  indexes - create the database indexes")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addEmployeeCmd := flag.NewFlagSet("addemployee", flag.ExitOnError)
	addEmployeeID := addEmployeeCmd.String("id", "", "The employee's unique id.")
	addEmployeeName := addEmployeeCmd.String("name", "", "The employee's full name.")
	addEmployeeEmail := addEmployeeCmd.String("email", "", "The employee's email address.")
	addEmployeeDept := addEmployeeCmd.String("department", "", "The employee's department.")

	switch args[1] {
	case "addemployee":
		if err := addEmployeeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addEmployeeID == "" || *addEmployeeName == "" || *addEmployeeEmail == "" || *addEmployeeDept == "" {
			addEmployeeCmd.Usage()
			return errHelp
		}
		return cli.addEmployee(*addEmployeeID, *addEmployeeName, *addEmployeeEmail, *addEmployeeDept)
	case "indexes":
		return database.EnsureIndexes(context.Background(), cli.db)
	default:
		cli.printUsage()
		return errHelp
	}
}
