package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mealpedeal/internal/domain/offer"
	reqdto "mealpedeal/internal/handler/dto/request"
	resdto "mealpedeal/internal/handler/dto/response"
	"mealpedeal/internal/handler/httperr"
	"mealpedeal/internal/handler/middleware"
	"mealpedeal/internal/pkg/geo"
	"mealpedeal/internal/usecase/commands"
	"mealpedeal/internal/usecase/queries"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
	offerQueries  queries.OfferQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
		offerQueries:  offerQueries,
	}
}

// @Summary Create offer
// @Description Publish a new surprise bag offer for the manager's restaurant
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /manager/offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.offerCommands.CreateOffer(c.Request.Context(), req, restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRestaurantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Restaurant not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Offer validation failed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary Update offer
// @Description Partially update an offer owned by the manager's restaurant
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Offer patch"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /manager/offers/{id} [patch]
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID format",
		})
		return
	}

	var req reqdto.UpdateOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.offerCommands.UpdateOffer(c.Request.Context(), req, offerID, restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Offer not found",
			})
		case errors.Is(err, commands.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Offer belongs to another restaurant",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Offer validation failed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Get offer
// @Description Get a single offer by ID
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID format",
		})
		return
	}

	view, err := h.offerQueries.GetByID(c.Request.Context(), offerID)
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Offer not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Nearby offers
// @Description List active offers within a radius of the given coordinates
// @Tags offers
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius in km (default 10)"
// @Param vegetarian query bool false "Only vegetarian offers"
// @Param jain query bool false "Only Jain-friendly offers"
// @Param vegan query bool false "Only vegan offers"
// @Param cuisine query string false "Cuisine filter"
// @Param spice_level query string false "Spice level filter (MILD|MEDIUM|SPICY)"
// @Param food_category query string false "Food category filter"
// @Param max_price_paise query int false "Maximum price in paise"
// @Param min_discount query int false "Minimum discount percentage"
// @Success 200 {array} resdto.NearbyOfferResponse
// @Failure 400 {object} map[string]string
// @Router /offers/nearby [get]
func (h *OfferHandler) ListNearbyOffers(c *gin.Context) {
	filters, err := parseNearbyFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.offerQueries.ListNearby(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromNearbyOfferItems(items))
}

// @Summary Offers by category
// @Description List active offers in a food category
// @Tags offers
// @Produce json
// @Param category path string true "Food category"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Router /offers/category/{category} [get]
func (h *OfferHandler) ListOffersByCategory(c *gin.Context) {
	category, err := offer.ParseFoodCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid food category",
		})
		return
	}

	views, err := h.offerQueries.ListByCategory(c.Request.Context(), category)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

// @Summary Vegetarian offers
// @Description List active vegetarian offers
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.OfferResponse
// @Router /offers/vegetarian [get]
func (h *OfferHandler) ListVegetarianOffers(c *gin.Context) {
	views, err := h.offerQueries.ListVegetarian(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

// @Summary My offers
// @Description List the manager's restaurant offers, newest first
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated offers"
// @Success 200 {array} resdto.OfferResponse
// @Failure 401 {object} map[string]string
// @Router /manager/offers [get]
func (h *OfferHandler) ListMyOffers(c *gin.Context) {
	restaurantID, ok := middleware.GetRestaurantID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))

	views, err := h.offerQueries.ListByRestaurant(c.Request.Context(), restaurantID, !includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}

func parseNearbyFilters(c *gin.Context) (queries.NearbyFilters, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return queries.NearbyFilters{}, errors.New("lat is required and must be a number")
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		return queries.NearbyFilters{}, errors.New("lng is required and must be a number")
	}

	filters := queries.NearbyFilters{
		Location: geo.Point{Latitude: lat, Longitude: lng},
	}

	if v := c.Query("radius_km"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil || radius <= 0 {
			return queries.NearbyFilters{}, errors.New("radius_km must be a positive number")
		}
		filters.RadiusKm = radius
	}
	filters.Vegetarian, _ = strconv.ParseBool(c.DefaultQuery("vegetarian", "false"))
	filters.Jain, _ = strconv.ParseBool(c.DefaultQuery("jain", "false"))
	filters.Vegan, _ = strconv.ParseBool(c.DefaultQuery("vegan", "false"))

	if v := c.Query("cuisine"); v != "" {
		filters.Cuisine = &v
	}
	if v := c.Query("spice_level"); v != "" {
		level, err := offer.ParseSpiceLevel(v)
		if err != nil {
			return queries.NearbyFilters{}, errors.New("invalid spice_level")
		}
		filters.SpiceLevel = &level
	}
	if v := c.Query("food_category"); v != "" {
		category, err := offer.ParseFoodCategory(v)
		if err != nil {
			return queries.NearbyFilters{}, errors.New("invalid food_category")
		}
		filters.FoodCategory = &category
	}
	if v := c.Query("max_price_paise"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 32)
		if err != nil || maxPrice < 0 {
			return queries.NearbyFilters{}, errors.New("max_price_paise must be a non-negative integer")
		}
		price := int32(maxPrice)
		filters.MaxPricePaise = &price
	}
	if v := c.Query("min_discount"); v != "" {
		minDiscount, err := strconv.ParseInt(v, 10, 32)
		if err != nil || minDiscount < 0 {
			return queries.NearbyFilters{}, errors.New("min_discount must be a non-negative integer")
		}
		discount := int32(minDiscount)
		filters.MinDiscount = &discount
	}
	return filters, nil
}
