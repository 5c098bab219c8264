package httperr

import (
	"net/http"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldDetail is the detail body of a step validation failure.
type FieldDetail struct {
	Step      int               `json:"step"`
	StepTitle string            `json:"step_title"`
	Fields    map[string]string `json:"fields"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error class to its HTTP status.
func StatusOf(err error) int {
	var vErr *booking.ValidationError
	switch {
	case errs.As(err, &vErr):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrSubmission):
		return http.StatusBadGateway
	case errs.Is(err, errs.ErrLoad):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes err with the status of its class. Client errors carry the
// root cause as detail; server errors only carry msg.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)

	var vErr *booking.ValidationError
	switch {
	case errs.As(err, &vErr):
		AbortWithError(c, status, err, msg, newFieldDetail(vErr))
	case status >= http.StatusInternalServerError:
		AbortWithError(c, status, err, msg, nil)
	default:
		AbortWithError(c, status, err, msg, errs.Cause(err).Error())
	}
}

func newFieldDetail(e *booking.ValidationError) FieldDetail {
	fields := make(map[string]string, len(e.Fields))
	for name, msg := range e.Fields {
		fields[string(name)] = msg
	}
	return FieldDetail{
		Step:      int(e.Step),
		StepTitle: e.Step.String(),
		Fields:    fields,
	}
}
