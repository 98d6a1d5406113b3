package handlers

import (
	"eld-trip-planner/internal/api/dto"
	"eld-trip-planner/internal/services"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TripHandler serves the trip form page and its actions.
type TripHandler struct {
	Planner *services.TripPlanner
	Cookies Cookies
}

// Index renders the page from the held session.
func (h *TripHandler) Index(c *gin.Context) {
	id := h.Cookies.SessionID(c)

	s, err := h.Planner.State(c.Request.Context(), id)
	if err != nil {
		log.Printf("load session failed: session=%s err=%v", id, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "index.html", dto.NewPage(s))
}

// Submit runs one trip calculation and redirects back to the page.
// A calculation failure is shown on the page, not as an HTTP error.
func (h *TripHandler) Submit(c *gin.Context) {
	id := h.Cookies.SessionID(c)

	var req dto.TripFormRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid form body")
		return
	}

	_, err := h.Planner.Submit(c.Request.Context(), id, req.Form())
	if err != nil && !errors.Is(err, services.ErrBusy) {
		log.Printf("submit trip failed: session=%s err=%v", id, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// OpenLog resolves the ELD log document.
//
// Script callers ask for JSON and get {"url": ...} or {"error": ...}, so a
// failure is shown in place without navigating. Plain link follows get a
// 303 to the document, or back to the page which shows the stored message.
func (h *TripHandler) OpenLog(c *gin.Context) {
	id := h.Cookies.SessionID(c)
	wantsJSON := c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON

	addr, err := h.Planner.OpenLog(c.Request.Context(), id)

	var le *services.LogError
	if errors.As(err, &le) {
		if wantsJSON {
			writeError(c, http.StatusUnprocessableEntity, le.Message)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		log.Printf("open log failed: session=%s err=%v", id, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("Referrer-Policy", "no-referrer")
	if wantsJSON {
		c.Header("Cache-Control", "no-store")
		writeJSON(c, http.StatusOK, dto.LogLinkResponse{URL: addr})
		return
	}
	c.Redirect(http.StatusSeeOther, addr)
}

// Reset clears the held trip and redirects back to the page.
func (h *TripHandler) Reset(c *gin.Context) {
	id := h.Cookies.SessionID(c)

	err := h.Planner.Reset(c.Request.Context(), id)
	if err != nil && !errors.Is(err, services.ErrBusy) {
		log.Printf("reset session failed: session=%s err=%v", id, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
