package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "wisekey/internal/errors"
	"wisekey/internal/middleware"
	"wisekey/internal/model"
	"wisekey/internal/repository"
	"wisekey/internal/service"
)

// PropertyHandler handles listing endpoints. Every route requires a
// resolved identity; all reads and mutations are scoped to that owner.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyRequest represents a listing create/update payload.
type PropertyRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`

	TransactionType *string `json:"transaction_type" validate:"omitempty,oneof=buy rent daily_rent"`

	City     *string `json:"city" validate:"omitempty,max=120"`
	District *string `json:"district" validate:"omitempty,max=120"`
	Street   *string `json:"street" validate:"omitempty,max=255"`

	Currency *string  `json:"currency" validate:"omitempty,oneof=GEL USD"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`

	AreaSqm *float64 `json:"area_sqm" validate:"omitempty,gte=0"`

	Rooms     *int `json:"rooms" validate:"omitempty,gte=0"`
	Bedrooms  *int `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms *int `json:"bathrooms" validate:"omitempty,gte=0"`

	Floor         *int  `json:"floor" validate:"omitempty,gte=0"`
	TotalFloors   *int  `json:"total_floors" validate:"omitempty,gte=0"`
	NotFirstFloor *bool `json:"not_first_floor"`

	Condition *string `json:"condition" validate:"omitempty,oneof=black_frame white_frame green_frame old_renov new_renov"`

	BuildingType       *string `json:"building_type" validate:"omitempty,max=50"`
	HeatingType        *string `json:"heating_type" validate:"omitempty,max=50"`
	HasAirConditioning *bool   `json:"has_air_conditioning"`

	ParkingType *string `json:"parking_type" validate:"omitempty,max=50"`
	HasBalcony  *bool   `json:"has_balcony"`
	PetsAllowed *bool   `json:"pets_allowed"`
	Furnished   *string `json:"furnished" validate:"omitempty,max=50"`

	Description *string `json:"description"`
}

func (r *PropertyRequest) toModel() *model.Property {
	return &model.Property{
		Title:              r.Title,
		TransactionType:    r.TransactionType,
		City:               r.City,
		District:           r.District,
		Street:             r.Street,
		Currency:           r.Currency,
		Price:              r.Price,
		AreaSqm:            r.AreaSqm,
		Rooms:              r.Rooms,
		Bedrooms:           r.Bedrooms,
		Bathrooms:          r.Bathrooms,
		Floor:              r.Floor,
		TotalFloors:        r.TotalFloors,
		NotFirstFloor:      r.NotFirstFloor,
		Condition:          r.Condition,
		BuildingType:       r.BuildingType,
		HeatingType:        r.HeatingType,
		HasAirConditioning: r.HasAirConditioning,
		ParkingType:        r.ParkingType,
		HasBalcony:         r.HasBalcony,
		PetsAllowed:        r.PetsAllowed,
		Furnished:          r.Furnished,
		Description:        r.Description,
	}
}

// Create godoc
// @Summary Create a listing
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PropertyRequest true "Listing data"
// @Success 201 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return unauthenticated()
	}

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.propertyService.Create(c.Request().Context(), user.ID, req.toModel())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, property)
}

// List godoc
// @Summary List own listings, newest first
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Property
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return unauthenticated()
	}

	properties, err := h.propertyService.List(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, properties)
}

// Search godoc
// @Summary Search own listings with filters
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param city query string false "City"
// @Param district query string false "District"
// @Param transaction_type query string false "buy / rent / daily_rent"
// @Param condition query string false "Condition"
// @Param currency query string false "GEL / USD"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_area query number false "Minimum area, sqm"
// @Param max_area query number false "Maximum area, sqm"
// @Param rooms query integer false "Exact room count"
// @Param bedrooms query integer false "Exact bedroom count"
// @Success 200 {array} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties/search [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return unauthenticated()
	}

	filter, err := searchFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	properties, err := h.propertyService.Search(c.Request().Context(), user.ID, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, properties)
}

// Get godoc
// @Summary Get one of your listings
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return unauthenticated()
	}

	id, err := parsePropertyID(c)
	if err != nil {
		return err
	}

	property, err := h.propertyService.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, property)
}

// Update godoc
// @Summary Replace one of your listings
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body PropertyRequest true "Listing data"
// @Success 200 {object} model.Property
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return unauthenticated()
	}

	id, err := parsePropertyID(c)
	if err != nil {
		return err
	}

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.propertyService.Update(c.Request().Context(), user.ID, id, req.toModel())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, property)
}

// Delete godoc
// @Summary Delete one of your listings
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return unauthenticated()
	}

	id, err := parsePropertyID(c)
	if err != nil {
		return err
	}

	if err := h.propertyService.Delete(c.Request().Context(), user.ID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}

func parsePropertyID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid property ID",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func searchFilterFromQuery(c echo.Context) (repository.SearchFilter, error) {
	var filter repository.SearchFilter

	filter.City = stringParam(c, "city")
	filter.District = stringParam(c, "district")
	filter.TransactionType = stringParam(c, "transaction_type")
	filter.Condition = stringParam(c, "condition")
	filter.Currency = stringParam(c, "currency")

	var err error
	if filter.MinPrice, err = floatParam(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = floatParam(c, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinArea, err = floatParam(c, "min_area"); err != nil {
		return filter, err
	}
	if filter.MaxArea, err = floatParam(c, "max_area"); err != nil {
		return filter, err
	}
	if filter.Rooms, err = intParam(c, "rooms"); err != nil {
		return filter, err
	}
	if filter.Bedrooms, err = intParam(c, "bedrooms"); err != nil {
		return filter, err
	}

	return filter, nil
}

func stringParam(c echo.Context, name string) *string {
	if v := c.QueryParam(name); v != "" {
		return &v
	}
	return nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &parsed, nil
}

func intParam(c echo.Context, name string) (*int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &parsed, nil
}

func unauthenticated() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: "invalid or missing credentials",
		Code:  "UNAUTHORIZED",
	})
}
