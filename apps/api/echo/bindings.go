package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/attendance"
)

// ListResponse is the envelope for all list-returning endpoints. Message is a
// human-readable summary, never used for control flow.
type ListResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
}

func newListResponse(message string, data interface{}, total int) ListResponse {
	return ListResponse{Success: true, Message: message, Data: data, Total: total}
}

type Pagination struct {
	Skip  int64
	Limit int64
}

// Bind reads skip/limit query params, enforcing skip >= 0 and 1 <= limit <= 500.
func (p *Pagination) Bind(ctx echo.Context) error {
	p.Skip = 0
	p.Limit = attendance.DefaultLimit

	if raw := ctx.QueryParam("skip"); raw != "" {
		skip, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || skip < 0 {
			return core.NewValidationError(
				errors.New("invalid pagination"),
				core.FieldError{Field: "skip", Error: "must be an integer >= 0"},
			)
		}
		p.Skip = skip
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 || limit > attendance.MaxLimit {
			return core.NewValidationError(
				errors.New("invalid pagination"),
				core.FieldError{Field: "limit", Error: "must be an integer between 1 and 500"},
			)
		}
		p.Limit = limit
	}
	return nil
}
