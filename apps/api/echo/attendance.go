package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hrms/core/attendance"
	"github.com/trezcool/hrms/core/employee"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(e *echo.Echo, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	g := e.Group("/attendance")
	g.POST("", api.mark)
	g.GET("", api.query)
	g.GET("/today/summary", api.todaySummary)
	g.GET("/employee/:id", api.queryByEmployee)
	g.GET("/employee/:id/summary", api.summary)
	g.PUT("/employee/:id/date/:date", api.update)
	g.DELETE("/employee/:id/date/:date", api.destroy)
}

// Handlers

func (api *attendanceApi) mark(ctx echo.Context) error {
	var data attendance.NewAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAttendance")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	att, err := api.svc.Mark(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusCreated, att)
}

func (api *attendanceApi) query(ctx echo.Context) error {
	rctx := ctx.Request().Context()

	var records []attendance.Attendance
	var err error
	if date := ctx.QueryParam("date"); date != "" {
		records, err = api.svc.QueryByDate(rctx, date)
	} else {
		var page Pagination
		if err = page.Bind(ctx); err != nil {
			return err
		}
		records, err = api.svc.QueryAll(rctx, page.Skip, page.Limit)
	}
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}

	return ctx.JSON(http.StatusOK, newListResponse(
		fmt.Sprintf("Retrieved %d attendance records", len(records)), records, len(records),
	))
}

func (api *attendanceApi) queryByEmployee(ctx echo.Context) error {
	id := employee.CleanID(ctx.Param("id"))

	records, err := api.svc.QueryByEmployee(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying employee attendance")
	}
	return ctx.JSON(http.StatusOK, newListResponse(
		fmt.Sprintf("Retrieved %d attendance records for %s", len(records), id), records, len(records),
	))
}

func (api *attendanceApi) summary(ctx echo.Context) error {
	summary, err := api.svc.Summarize(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "summarizing attendance")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *attendanceApi) todaySummary(ctx echo.Context) error {
	summary, err := api.svc.SummarizeToday(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "summarizing today's attendance")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *attendanceApi) update(ctx echo.Context) error {
	att, err := api.svc.UpdateStatus(
		ctx.Request().Context(),
		ctx.Param("id"),
		ctx.Param("date"),
		ctx.QueryParam("status"),
	)
	if err != nil {
		return errors.Wrap(err, "updating attendance")
	}
	return ctx.JSON(http.StatusOK, att)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	res, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"), ctx.Param("date"))
	if err != nil {
		return errors.Wrap(err, "deleting attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Attendance record deleted successfully",
		"employee_id": res.EmployeeID,
		"date":        res.Date,
	})
}
