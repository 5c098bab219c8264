package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	q queries.VenueQueries
}

func NewVenueHandler(q queries.VenueQueries) *VenueHandler {
	return &VenueHandler{q: q}
}

// @Summary Search venues
// @Description Filter the venue catalog; every criterion must match
// @Tags venues
// @Produce json
// @Param search query string false "Case-insensitive substring of the venue name"
// @Param type query string false "Venue type, or All for any"
// @Param category query string false "Known event category, or All for any"
// @Param location query string false "Location, or All for any"
// @Param price_min query number false "Minimum price per day"
// @Param price_max query number false "Maximum price per day"
// @Param capacity_min query number false "Minimum capacity"
// @Param capacity_max query number false "Maximum capacity"
// @Success 200 {object} resdto.VenueListResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /venues [get]
func (h *VenueHandler) Search(c *gin.Context) {
	var query reqdto.VenueSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	views, err := h.q.Search(c.Request.Context(), query.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to search venues")
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueViews(views))
}

// @Summary Venue filter facets
// @Tags venues
// @Produce json
// @Success 200 {object} resdto.FacetsResponse
// @Router /venues/facets [get]
func (h *VenueHandler) Facets(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromFacetsView(h.q.Facets()))
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseVenueID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load venue")
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}
