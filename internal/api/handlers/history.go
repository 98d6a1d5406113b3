package handlers

import (
	"eld-trip-planner/internal/api/dto"
	"eld-trip-planner/internal/ports"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jszwec/csvutil"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// HistoryHandler exposes read-only listings of recorded submissions.
type HistoryHandler struct {
	History ports.TripHistory
}

func (h *HistoryHandler) List(c *gin.Context) {
	entries, ok := h.recent(c)
	if !ok {
		return
	}

	writeJSON(c, http.StatusOK, dto.ListHistoryResponse{Trips: dto.NewHistoryEntries(entries)})
}

func (h *HistoryHandler) CSV(c *gin.Context) {
	entries, ok := h.recent(c)
	if !ok {
		return
	}

	b, err := csvutil.Marshal(dto.NewHistoryEntries(entries))
	if err != nil {
		log.Printf("encode history csv failed: %v", err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trip-history.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", b)
}

func (h *HistoryHandler) recent(c *gin.Context) ([]ports.HistoryEntry, bool) {
	limit := defaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxHistoryLimit {
			writeError(c, http.StatusBadRequest, "limit must be between 1 and 500")
			return nil, false
		}
		limit = n
	}

	entries, err := h.History.Recent(c.Request.Context(), limit)
	if err != nil {
		log.Printf("list trip history failed: %v", err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return entries, true
}
