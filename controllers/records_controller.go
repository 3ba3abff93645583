package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-assistant/services"
	"hotel-assistant/utils"
)

// RecordsController serves the raw catalog and ledger for read-only display.
type RecordsController struct {
	Store   services.Store
	Timeout time.Duration
}

func NewRecordsController(store services.Store, timeout time.Duration) *RecordsController {
	return &RecordsController{Store: store, Timeout: timeout}
}

func (rc *RecordsController) snapshot(c *gin.Context) (*services.Snapshot, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), rc.Timeout)
	defer cancel()
	snapshot, err := rc.Store.Snapshot(ctx)
	if err != nil {
		info := answerErrorMapper().Map(err)
		utils.JSONError(c, info.Status, info.Message)
		return nil, false
	}
	return snapshot, true
}

// GetRoomTypes handles GET /api/room-types.
func (rc *RecordsController) GetRoomTypes(c *gin.Context) {
	snapshot, ok := rc.snapshot(c)
	if !ok {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, snapshot.Catalog.ListAll())
}

// GetReservations handles GET /api/reservations.
func (rc *RecordsController) GetReservations(c *gin.Context) {
	snapshot, ok := rc.snapshot(c)
	if !ok {
		return
	}
	all := snapshot.Ledger.All()
	views := make([]services.ReservationView, 0, len(all))
	for _, r := range all {
		views = append(views, services.NewReservationView(r))
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// AuditReservations handles GET /api/reservations/audit.
func (rc *RecordsController) AuditReservations(c *gin.Context) {
	snapshot, ok := rc.snapshot(c)
	if !ok {
		return
	}
	violations := snapshot.Ledger.Audit(snapshot.Catalog)
	if violations == nil {
		violations = []services.Violation{}
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"checked":    len(snapshot.Ledger.All()),
		"violations": violations,
	})
}
