package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hrms/core/employee"
)

type employeeApi struct {
	svc *employee.Service
}

func registerEmployeeAPI(e *echo.Echo, svc *employee.Service) {
	api := employeeApi{svc: svc}

	g := e.Group("/employees")
	g.POST("", api.create)
	g.GET("", api.query)
	g.GET("/:id", api.retrieve)
	g.PUT("/:id", api.update)
	g.DELETE("/:id", api.destroy)
}

// Handlers

func (api *employeeApi) create(ctx echo.Context) error {
	var data employee.NewEmployee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEmployee")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	emp, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating employee")
	}
	return ctx.JSON(http.StatusCreated, emp)
}

func (api *employeeApi) query(ctx echo.Context) error {
	filter := employee.QueryFilter{Department: ctx.QueryParam("department")}

	employees, err := api.svc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying employees")
	}
	return ctx.JSON(http.StatusOK, newListResponse(
		fmt.Sprintf("Retrieved %d employees", len(employees)), employees, len(employees),
	))
}

func (api *employeeApi) retrieve(ctx echo.Context) error {
	emp, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting employee")
	}
	return ctx.JSON(http.StatusOK, emp)
}

func (api *employeeApi) update(ctx echo.Context) error {
	var data employee.UpdateEmployee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEmployee")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	emp, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating employee")
	}
	return ctx.JSON(http.StatusOK, emp)
}

func (api *employeeApi) destroy(ctx echo.Context) error {
	res, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "deleting employee")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success":                    true,
		"message":                    fmt.Sprintf("Employee '%s' deleted successfully", res.EmployeeID),
		"employee_id":                res.EmployeeID,
		"attendance_records_deleted": res.AttendanceRecordsDeleted,
	})
}
