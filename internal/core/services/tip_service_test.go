package services_test

import (
	"context"
	"testing"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/services"

	"github.com/stretchr/testify/suite"
)

type TipServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
}

func (suite *TipServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
}

func (suite *TipServiceTestSuite) TestGenerateTip_DisabledWithoutAPIKey() {
	service := services.NewTipService(suite.mockEntryRepo, "", "gemini-2.5-flash")

	tip, err := service.GenerateTip(context.Background())

	suite.Require().NoError(err)
	suite.Equal("La funcionalidad de IA está deshabilitada. Por favor, configura tu API key.", tip)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntries")
}

func TestTipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TipServiceTestSuite))
}
