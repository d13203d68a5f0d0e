package mongodb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/employee"
	"github.com/trezcool/hrms/storage/database"
)

type employeeRepository struct {
	coll *mongo.Collection
}

var _ employee.Repository = (*employeeRepository)(nil) // interface compliance check

func NewEmployeeRepository(db *mongo.Database) employee.Repository {
	return &employeeRepository{coll: db.Collection(database.EmployeesCollection)}
}

func (repo *employeeRepository) CheckUniqueness(ctx context.Context, id, email string, excluded ...employee.Employee) error {
	exclIDs := make([]string, 0, len(excluded))
	for _, emp := range excluded {
		exclIDs = append(exclIDs, emp.ID)
	}

	if id != "" {
		err := repo.coll.FindOne(ctx, bson.M{"employee_id": id}).Err()
		if err == nil {
			return employee.ErrIDExists
		}
		if err != mongo.ErrNoDocuments {
			return core.NewDatabaseError(err, "checking employee_id uniqueness")
		}
	}

	if email != "" {
		filter := bson.M{"email": email}
		if len(exclIDs) > 0 {
			filter["employee_id"] = bson.M{"$nin": exclIDs}
		}
		err := repo.coll.FindOne(ctx, filter).Err()
		if err == nil {
			return employee.ErrEmailExists
		}
		if err != mongo.ErrNoDocuments {
			return core.NewDatabaseError(err, "checking email uniqueness")
		}
	}
	return nil
}

func (repo *employeeRepository) CreateEmployee(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, err := repo.coll.InsertOne(ctx, emp); err != nil {
		return employee.Employee{}, mapEmployeeWriteErr(err, emp, "creating employee")
	}
	return emp, nil
}

func (repo *employeeRepository) QueryAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return repo.query(ctx, bson.M{}, opts)
}

func (repo *employeeRepository) FilterEmployees(ctx context.Context, filter employee.QueryFilter) ([]employee.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	return repo.query(ctx, bson.M{"department": filter.Department}, opts)
}

func (repo *employeeRepository) query(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]employee.Employee, error) {
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, core.NewDatabaseError(err, "fetching employees")
	}
	employees := make([]employee.Employee, 0)
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, core.NewDatabaseError(err, "decoding employees")
	}
	return employees, nil
}

func (repo *employeeRepository) GetEmployeeByID(ctx context.Context, id string) (employee.Employee, error) {
	var emp employee.Employee
	err := repo.coll.FindOne(ctx, bson.M{"employee_id": id}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return employee.Employee{}, core.NewNotFoundError(employee.Resource, id)
	}
	if err != nil {
		return employee.Employee{}, core.NewDatabaseError(err, "fetching employee")
	}
	return emp, nil
}

func (repo *employeeRepository) UpdateEmployee(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	update := bson.M{"$set": bson.M{
		"full_name":  emp.FullName,
		"email":      emp.Email,
		"department": emp.Department,
	}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"employee_id": emp.ID}, update); err != nil {
		return employee.Employee{}, mapEmployeeWriteErr(err, emp, "updating employee")
	}
	return repo.GetEmployeeByID(ctx, emp.ID)
}

func (repo *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"employee_id": id}); err != nil {
		return core.NewDatabaseError(err, "deleting employee")
	}
	return nil
}

func (repo *employeeRepository) CountEmployees(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, core.NewDatabaseError(err, "counting employees")
	}
	return count, nil
}

// mapEmployeeWriteErr converts a unique index violation into the matching
// DuplicateError; anything else becomes a DatabaseError.
func mapEmployeeWriteErr(err error, emp employee.Employee, msg string) error {
	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "email") {
			return core.NewDuplicateError(employee.Resource, "email", emp.Email)
		}
		return core.NewDuplicateError(employee.Resource, "employee_id", emp.ID)
	}
	return core.NewDatabaseError(err, msg)
}
