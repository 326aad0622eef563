package services_test

import (
	"context"
	"testing"

	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/apperrors"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/domain"
	portssvc "github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/ports/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/core/services"
	"github.com/smilelifetheprojectSG/HormigaFinanciera/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo      *MockGoalRepository
	mockMilestoneRepo *MockMilestoneRepository
	service           portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockMilestoneRepo = new(MockMilestoneRepository)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockMilestoneRepo)
}

func (suite *GoalServiceTestSuite) TestGetGoal_AbsentIsNil() {
	ctx := context.Background()
	suite.mockGoalRepo.On("FindGoal", ctx).Return(nil, nil).Once()

	goal, err := suite.service.GetGoal(ctx)

	suite.NoError(err)
	suite.Nil(goal)
}

func (suite *GoalServiceTestSuite) TestSaveGoal_NewGoalResetsFlags() {
	ctx := context.Background()
	req := dto.SaveGoalRequest{
		Target:      decimal.NewFromInt(1000),
		Description: "Vacaciones",
		Deadline:    "2026-12-31",
	}

	suite.mockGoalRepo.On("FindGoal", ctx).Return(nil, nil).Once()
	suite.mockMilestoneRepo.On("Reset", ctx).Return(nil).Once()
	suite.mockGoalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Target.Equal(req.Target) && g.Description == "Vacaciones" && g.Deadline == "2026-12-31"
	})).Return(nil).Once()

	goal, err := suite.service.SaveGoal(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.mockMilestoneRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestSaveGoal_TargetChangeResetsFlags() {
	ctx := context.Background()
	existing := &domain.Goal{Target: decimal.NewFromInt(500), Description: "Vacaciones"}

	suite.mockGoalRepo.On("FindGoal", ctx).Return(existing, nil).Once()
	suite.mockMilestoneRepo.On("Reset", ctx).Return(nil).Once()
	suite.mockGoalRepo.On("SaveGoal", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.SaveGoal(ctx, dto.SaveGoalRequest{
		Target:      decimal.NewFromInt(1000),
		Description: "Vacaciones",
	})

	suite.Require().NoError(err)
	suite.mockMilestoneRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestSaveGoal_DeadlineOnlyEditKeepsFlags() {
	ctx := context.Background()
	existing := &domain.Goal{Target: decimal.NewFromInt(1000), Description: "Vacaciones", Deadline: "2026-10-01"}

	suite.mockGoalRepo.On("FindGoal", ctx).Return(existing, nil).Once()
	suite.mockGoalRepo.On("SaveGoal", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.SaveGoal(ctx, dto.SaveGoalRequest{
		Target:      decimal.NewFromInt(1000),
		Description: "Vacaciones",
		Deadline:    "2026-12-31",
	})

	suite.Require().NoError(err)
	suite.mockMilestoneRepo.AssertNotCalled(suite.T(), "Reset")
}

func (suite *GoalServiceTestSuite) TestSaveGoal_Validation() {
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.SaveGoalRequest
	}{
		{"empty description", dto.SaveGoalRequest{Target: decimal.NewFromInt(100), Description: "   "}},
		{"non-positive target", dto.SaveGoalRequest{Target: decimal.Zero, Description: "Vacaciones"}},
		{"bad deadline", dto.SaveGoalRequest{Target: decimal.NewFromInt(100), Description: "Vacaciones", Deadline: "31/12/2026"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			goal, err := suite.service.SaveGoal(ctx, tt.req)
			suite.Nil(goal)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_ResetsFlags() {
	ctx := context.Background()
	suite.mockGoalRepo.On("DeleteGoal", ctx).Return(nil).Once()
	suite.mockMilestoneRepo.On("Reset", ctx).Return(nil).Once()

	suite.NoError(suite.service.DeleteGoal(ctx))
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockMilestoneRepo.AssertExpectations(suite.T())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
