package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/handlers"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) ListEntries(ctx context.Context, date string) ([]domain.Entry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) ([]domain.Entry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock MilestoneService ---
type MockMilestoneService struct {
	mock.Mock
}

func (m *MockMilestoneService) Evaluate(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

var _ portssvc.MilestoneSvcFacade = (*MockMilestoneService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockEntryService     *MockEntryService
	mockMilestoneService *MockMilestoneService
	jwtSecret            string
}

func (suite *EntryHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hormiga-test",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEntryService = new(MockEntryService)
	suite.mockMilestoneService = new(MockMilestoneService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEntryRoutes(v1, suite.mockEntryService, suite.mockMilestoneService)
}

func (suite *EntryHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestListEntries_Success() {
	entries := []domain.Entry{
		{EntryID: uuid.NewString(), Date: "2026-08-10", Concept: "Comida", Amount: decimal.NewFromInt(10), OriginalAmount: decimal.NewFromInt(10), Currency: domain.CurrencyEUR},
	}
	suite.mockEntryService.On("ListEntries", mock.Anything, "2026-08-10").Return(entries, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries?date=2026-08-10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("Comida", resp.Entries[0].Concept)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	created := &domain.Entry{
		EntryID:        uuid.NewString(),
		Date:           "2026-08-10",
		Concept:        "Comida",
		Amount:         decimal.NewFromInt(10),
		OriginalAmount: decimal.NewFromInt(10),
		Currency:       domain.CurrencyEUR,
	}
	fired := []domain.Notification{
		{NotificationID: uuid.NewString(), Milestone: domain.MilestoneGoal80, Type: domain.NotificationInfo, Title: "¡Estás cerca!"},
	}

	suite.mockEntryService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateEntryRequest")).Return(created, nil).Once()
	suite.mockMilestoneService.On("Evaluate", mock.Anything).Return(fired, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries", dto.CreateEntryRequest{
		Type:     dto.EntryTypeIncome,
		Amount:   decimal.NewFromInt(10),
		Concept:  "Comida",
		Date:     "2026-08-10",
		Currency: domain.CurrencyEUR,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Entry)
	suite.Equal(created.EntryID, resp.Entry.EntryID)
	suite.Require().Len(resp.Notifications, 1)
	suite.Equal(domain.MilestoneGoal80, resp.Notifications[0].Milestone)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_BadRequest() {
	// Missing required fields never reaches the service.
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", map[string]string{"type": "income"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_MissingIDGivesNoContent() {
	suite.mockEntryService.On("UpdateEntry", mock.Anything, "stale", mock.AnythingOfType("dto.UpdateEntryRequest")).Return(nil, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/entries/stale", dto.UpdateEntryRequest{
		Type:     dto.EntryTypeIncome,
		Amount:   decimal.NewFromInt(10),
		Concept:  "Comida",
		Date:     "2026-08-10",
		Currency: domain.CurrencyEUR,
	})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockMilestoneService.AssertNotCalled(suite.T(), "Evaluate")
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	suite.mockEntryService.On("DeleteEntry", mock.Anything, "e1").Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/entries/e1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUnauthorizedWithoutToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "ListEntries")
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
