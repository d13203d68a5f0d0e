package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/attendance"
	"github.com/trezcool/hrms/storage/database"
)

type attendanceRepository struct {
	coll *mongo.Collection
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *mongo.Database) attendance.Repository {
	return &attendanceRepository{coll: db.Collection(database.AttendanceCollection)}
}

func (repo *attendanceRepository) CreateAttendance(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if _, err := repo.coll.InsertOne(ctx, att); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// the unique (employee_id, date) index caught a concurrent insert
			return attendance.Attendance{}, attendance.NewDuplicateError(att.EmployeeID, att.Date)
		}
		return attendance.Attendance{}, core.NewDatabaseError(err, "marking attendance")
	}
	return att, nil
}

func (repo *attendanceRepository) GetAttendance(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := repo.coll.FindOne(ctx, bson.M{"employee_id": employeeID, "date": date}).Decode(&att)
	if err == mongo.ErrNoDocuments {
		return attendance.Attendance{}, core.NewNotFoundError(attendance.Resource, employeeID+" on "+date)
	}
	if err != nil {
		return attendance.Attendance{}, core.NewDatabaseError(err, "fetching attendance")
	}
	return att, nil
}

func (repo *attendanceRepository) QueryByEmployeeID(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return repo.query(ctx, bson.M{"employee_id": employeeID}, opts)
}

func (repo *attendanceRepository) QueryByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "employee_id", Value: 1}})
	return repo.query(ctx, bson.M{"date": date}, opts)
}

func (repo *attendanceRepository) QueryAllAttendance(ctx context.Context, skip, limit int64) ([]attendance.Attendance, error) {
	// employee_id breaks date ties so pagination is stable
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "employee_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
	return repo.query(ctx, bson.M{}, opts)
}

func (repo *attendanceRepository) query(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]attendance.Attendance, error) {
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, core.NewDatabaseError(err, "fetching attendance")
	}
	records := make([]attendance.Attendance, 0)
	if err = cursor.All(ctx, &records); err != nil {
		return nil, core.NewDatabaseError(err, "decoding attendance")
	}
	return records, nil
}

func (repo *attendanceRepository) CountAttendance(ctx context.Context, employeeID, status string) (int64, error) {
	filter := bson.M{"employee_id": employeeID}
	if status != "" {
		filter["status"] = status
	}
	return repo.count(ctx, filter)
}

func (repo *attendanceRepository) CountByDateAndStatus(ctx context.Context, date, status string) (int64, error) {
	return repo.count(ctx, bson.M{"date": date, "status": status})
}

func (repo *attendanceRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, core.NewDatabaseError(err, "counting attendance")
	}
	return count, nil
}

func (repo *attendanceRepository) UpdateAttendanceStatus(ctx context.Context, employeeID, date, status string) (attendance.Attendance, error) {
	filter := bson.M{"employee_id": employeeID, "date": date}
	if _, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}}); err != nil {
		return attendance.Attendance{}, core.NewDatabaseError(err, "updating attendance")
	}
	return repo.GetAttendance(ctx, employeeID, date)
}

func (repo *attendanceRepository) DeleteAttendance(ctx context.Context, employeeID, date string) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"employee_id": employeeID, "date": date}); err != nil {
		return core.NewDatabaseError(err, "deleting attendance")
	}
	return nil
}

func (repo *attendanceRepository) DeleteAttendanceByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	res, err := repo.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, core.NewDatabaseError(err, "deleting attendance records")
	}
	return res.DeletedCount, nil
}
