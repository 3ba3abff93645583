package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-assistant/services"
	"hotel-assistant/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type DateRangePayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// QueryRequest is the JSON form of a query intent.
type QueryRequest struct {
	Kind      string            `json:"kind"`
	RoomType  *string           `json:"roomType,omitempty"`
	DateRange *DateRangePayload `json:"dateRange,omitempty"`
	GuestName *string           `json:"guestName,omitempty"`
	TopN      *int              `json:"topN,omitempty" binding:"omitempty,gte=0"`
	Status    *string           `json:"status,omitempty"`
	Threshold *float64          `json:"threshold,omitempty"`
}

// Intent converts the payload. Blank dates count as absent; malformed dates
// fail with services.ErrInvalidRange.
func (r QueryRequest) Intent() (services.QueryIntent, error) {
	intent := services.QueryIntent{
		Kind:      strings.TrimSpace(r.Kind),
		RoomType:  blankToNil(r.RoomType),
		GuestName: blankToNil(r.GuestName),
		TopN:      r.TopN,
		Status:    blankToNil(r.Status),
		Threshold: r.Threshold,
	}
	if r.DateRange != nil {
		var err error
		if intent.Start, err = optionalDate("start", r.DateRange.Start); err != nil {
			return intent, err
		}
		if intent.End, err = optionalDate("end", r.DateRange.End); err != nil {
			return intent, err
		}
	}
	return intent, nil
}

func optionalDate(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", services.ErrInvalidRange, field, err)
	}
	return &t, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// ---------------------------
// Controller
// ---------------------------

type QueryController struct {
	Resolver *services.QueryResolver
	Timeout  time.Duration
	mapper   *utils.ErrorMapper
}

func NewQueryController(resolver *services.QueryResolver, timeout time.Duration) *QueryController {
	return &QueryController{Resolver: resolver, Timeout: timeout, mapper: answerErrorMapper()}
}

func answerErrorMapper() *utils.ErrorMapper {
	return utils.NewErrorMapper().
		WithMapping(services.ErrInvalidRange, http.StatusBadRequest, "invalid date range").
		WithMapping(services.ErrUnknownRoomType, http.StatusBadRequest, "unknown room type").
		WithMapping(services.ErrNotFound, http.StatusNotFound, "room type not found").
		WithMapping(services.ErrStoreUnavailable, http.StatusServiceUnavailable, "reservation data unavailable").
		WithDefault(http.StatusInternalServerError, "the query could not be answered")
}

// Resolve handles POST /api/query.
func (qc *QueryController) Resolve(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query payload: "+err.Error())
		return
	}
	qc.answer(c, req)
}

// ResolveKind answers GET shortcuts for a fixed kind, reading parameters
// from the query string: roomType, start, end, guest, topN, status, threshold.
func (qc *QueryController) ResolveKind(kind services.QueryKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := QueryRequest{
			Kind:      string(kind),
			RoomType:  queryPtr(c, "roomType"),
			GuestName: queryPtr(c, "guest"),
			Status:    queryPtr(c, "status"),
		}
		start, end := c.Query("start"), c.Query("end")
		if start != "" || end != "" {
			req.DateRange = &DateRangePayload{Start: start, End: end}
		}
		if raw := strings.TrimSpace(c.Query("topN")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				utils.JSONError(c, http.StatusBadRequest, "topN must be a non-negative integer")
				return
			}
			req.TopN = &n
		}
		if raw := strings.TrimSpace(c.Query("threshold")); raw != "" {
			t, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "threshold must be a number")
				return
			}
			req.Threshold = &t
		}
		qc.answer(c, req)
	}
}

func (qc *QueryController) answer(c *gin.Context, req QueryRequest) {
	intent, err := req.Intent()
	var answer services.Answer
	if err != nil {
		kind, _ := services.NormalizeQueryKind(req.Kind)
		answer = services.ErrorAnswer(kind, err)
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), qc.Timeout)
		defer cancel()
		answer = qc.Resolver.Resolve(ctx, intent)
	}

	if answer.Kind != services.AnswerError {
		utils.JSONSuccess(c, http.StatusOK, answer)
		return
	}
	info := qc.mapper.Map(answer.Err())
	answer.Failure.Retryable = answer.Failure.Retryable || info.Retryable
	utils.JSONErrorWithData(c, info.Status, info.Message, answer)
}

func queryPtr(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &v
}
