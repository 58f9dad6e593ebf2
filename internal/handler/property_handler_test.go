package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "wisekey/internal/errors"
	"wisekey/internal/middleware"
	"wisekey/internal/model"
	"wisekey/internal/repository"
)

// MockPropertyService is a mock implementation of service.PropertyService.
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, ownerID uint, property *model.Property) (*model.Property, error) {
	args := m.Called(ctx, ownerID, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, ownerID, id uint) (*model.Property, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) List(ctx context.Context, ownerID uint) ([]model.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, ownerID, id uint, updated *model.Property) (*model.Property, error) {
	args := m.Called(ctx, ownerID, id, updated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockPropertyService) Search(ctx context.Context, ownerID uint, filter repository.SearchFilter) ([]model.Property, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

// withUser injects a resolved identity the way the middleware chain does.
func withUser(user *model.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.UserContextKey, user)
			return next(c)
		}
	}
}

func newPropertyEcho(svc *MockPropertyService, user *model.User) *echo.Echo {
	e := newTestEcho()
	h := NewPropertyHandler(svc)

	g := e.Group("", withUser(user))
	g.POST("/properties", h.Create)
	g.GET("/properties", h.List)
	g.GET("/properties/search", h.Search)
	g.GET("/properties/:id", h.Get)
	g.PUT("/properties/:id", h.Update)
	g.DELETE("/properties/:id", h.Delete)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPropertyHandler_Create(t *testing.T) {
	owner := &model.User{ID: 7, Email: "a@x.com"}

	svc := new(MockPropertyService)
	svc.On("Create", mock.Anything, uint(7), mock.AnythingOfType("*model.Property")).
		Run(func(args mock.Arguments) {
			p := args.Get(2).(*model.Property)
			p.ID = 9
			p.OwnerID = 7
		}).
		Return(&model.Property{ID: 9, OwnerID: 7, Title: "Flat in Vake"}, nil)

	e := newPropertyEcho(svc, owner)
	rec := doRequest(e, http.MethodPost, "/properties",
		`{"title":"Flat in Vake","transaction_type":"buy","city":"Tbilisi","currency":"USD","price":145000}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":9`)
	assert.Contains(t, rec.Body.String(), `"owner_id":7`)
	svc.AssertExpectations(t)
}

func TestPropertyHandler_Create_RejectsBadEnum(t *testing.T) {
	svc := new(MockPropertyService)
	e := newPropertyEcho(svc, &model.User{ID: 7})

	rec := doRequest(e, http.MethodPost, "/properties",
		`{"title":"Flat","transaction_type":"lease"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestPropertyHandler_Get_ForeignOwnedLooksAbsent(t *testing.T) {
	svc := new(MockPropertyService)
	// The service reports a listing owned by someone else as not found.
	svc.On("Get", mock.Anything, uint(7), uint(5)).Return(nil, apperrors.ErrPropertyNotFound)

	e := newPropertyEcho(svc, &model.User{ID: 7})
	rec := doRequest(e, http.MethodGet, "/properties/5", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROPERTY_NOT_FOUND")
}

func TestPropertyHandler_Get_InvalidID(t *testing.T) {
	svc := new(MockPropertyService)
	e := newPropertyEcho(svc, &model.User{ID: 7})

	for _, id := range []string{"abc", "0", "-1"} {
		rec := doRequest(e, http.MethodGet, "/properties/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
	svc.AssertNotCalled(t, "Get")
}

func TestPropertyHandler_Search_ParsesFilters(t *testing.T) {
	city := "Tbilisi"
	minPrice := 100000.0
	maxPrice := 200000.0
	expected := repository.SearchFilter{City: &city, MinPrice: &minPrice, MaxPrice: &maxPrice}

	svc := new(MockPropertyService)
	svc.On("Search", mock.Anything, uint(7), mock.MatchedBy(func(f repository.SearchFilter) bool {
		return f.City != nil && *f.City == *expected.City &&
			f.MinPrice != nil && *f.MinPrice == *expected.MinPrice &&
			f.MaxPrice != nil && *f.MaxPrice == *expected.MaxPrice &&
			f.District == nil && f.Rooms == nil
	})).Return([]model.Property{{ID: 9, OwnerID: 7, Title: "Flat"}}, nil)

	e := newPropertyEcho(svc, &model.User{ID: 7})
	rec := doRequest(e, http.MethodGet, "/properties/search?min_price=100000&max_price=200000&city=Tbilisi", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":9`)
	svc.AssertExpectations(t)
}

func TestPropertyHandler_Search_RejectsBadNumber(t *testing.T) {
	svc := new(MockPropertyService)
	e := newPropertyEcho(svc, &model.User{ID: 7})

	rec := doRequest(e, http.MethodGet, "/properties/search?min_price=cheap", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Search")
}

func TestPropertyHandler_Update(t *testing.T) {
	svc := new(MockPropertyService)
	svc.On("Update", mock.Anything, uint(7), uint(5), mock.AnythingOfType("*model.Property")).
		Return(&model.Property{ID: 5, OwnerID: 7, Title: "New title"}, nil)

	e := newPropertyEcho(svc, &model.User{ID: 7})
	rec := doRequest(e, http.MethodPut, "/properties/5", `{"title":"New title"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"New title"`)
}

func TestPropertyHandler_Delete(t *testing.T) {
	svc := new(MockPropertyService)
	svc.On("Delete", mock.Anything, uint(7), uint(5)).Return(nil)
	svc.On("Delete", mock.Anything, uint(7), uint(6)).Return(apperrors.ErrPropertyNotFound)

	e := newPropertyEcho(svc, &model.User{ID: 7})

	rec := doRequest(e, http.MethodDelete, "/properties/5", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/properties/6", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPropertyHandler_List(t *testing.T) {
	svc := new(MockPropertyService)
	svc.On("List", mock.Anything, uint(7)).
		Return([]model.Property{{ID: 2, OwnerID: 7}, {ID: 1, OwnerID: 7}}, nil)

	e := newPropertyEcho(svc, &model.User{ID: 7})
	rec := doRequest(e, http.MethodGet, "/properties", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
