package httperr

import (
	"errors"
	"net/http"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/capacity"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Machine readable codes for errors clients branch on.
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidState        = "INVALID_STATE"
	CodeRequestAlreadyTaken = "REQUEST_ALREADY_TAKEN"
	CodeRequestExpired      = "REQUEST_EXPIRED"
	CodeAlreadyResponded    = "ALREADY_RESPONDED"
	CodeAlreadyRated        = "ALREADY_RATED"
	CodeCapacityReached     = "CAPACITY_REACHED"
	CodeIdempotencyReused   = "IDEMPOTENCY_KEY_REUSED"
	CodeIdempotencyInFlight = "IDEMPOTENCY_IN_PROGRESS"
	CodeInternalServerError = "INTERNAL_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
)

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

// AbortWithCode is AbortWithError with a machine readable code.
func AbortWithCode(c *gin.Context, status int, err error, msg, code string, detail any) {
	abort(c, status, err, msg, code, detail)
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}
	if code == "" && status >= http.StatusInternalServerError {
		code = CodeInternalServerError
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// specific sentinels first; categories catch the rest
var codeTable = []struct {
	err  error
	code string
}{
	{matching.ErrRequestAlreadyTaken, CodeRequestAlreadyTaken},
	{matching.ErrRequestExpired, CodeRequestExpired},
	{response.ErrAlreadyResponded, CodeAlreadyResponded},
	{rating.ErrAlreadyRated, CodeAlreadyRated},
	{capacity.ErrCapacityReached, CodeCapacityReached},
	{errs.ErrIdempotencyKeyReused, CodeIdempotencyReused},
	{errs.ErrIdempotencyInProgress, CodeIdempotencyInFlight},
}

// Classify maps an error to its HTTP status and code by category.
func Classify(err error) (int, string) {
	status := statusOf(err)
	for _, entry := range codeTable {
		if errs.Is(err, entry.err) {
			return status, entry.code
		}
	}
	switch status {
	case http.StatusBadRequest:
		return status, CodeInvalidInput
	case http.StatusForbidden:
		return status, CodeForbidden
	case http.StatusNotFound:
		return status, CodeNotFound
	case http.StatusConflict:
		return status, CodeInvalidState
	default:
		return status, CodeInternalServerError
	}
}

func statusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError aborts with the status derived from err. Internal errors never
// leak their message.
func FromError(c *gin.Context, err error, fallbackMsg string) {
	status, code := Classify(err)
	msg := fallbackMsg
	if status != http.StatusInternalServerError {
		msg = publicMessage(err)
	}
	abort(c, status, err, msg, code, nil)
}

// publicMessage is the outermost message of a domain sentinel. Sentinels are
// created without wrapping, so their message is safe to show.
func publicMessage(err error) string {
	for _, entry := range codeTable {
		if errs.Is(err, entry.err) {
			return entry.err.Error()
		}
	}
	return err.Error()
}
