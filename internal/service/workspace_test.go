package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-marketing-backend/internal/analytics"
	"field-marketing-backend/internal/auth"
	"field-marketing-backend/internal/database/models"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/mocks"
	"field-marketing-backend/internal/service"
	"field-marketing-backend/internal/workspace"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var workspaceNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

// memorySource serves fixed collections for one owner
type memorySource struct {
	owner string
	c     workspace.Collections
	err   error
}

func (m *memorySource) ListTeamMembers(ownerID string) ([]models.TeamMember, error) {
	if m.err != nil {
		return nil, m.err
	}
	if ownerID != m.owner {
		return nil, nil
	}
	return m.c.TeamMembers, nil
}

func (m *memorySource) ListVisits(ownerID string) ([]models.Visit, error) {
	if ownerID != m.owner {
		return nil, nil
	}
	return m.c.Visits, nil
}

func (m *memorySource) ListLeads(ownerID string) ([]models.Lead, error) {
	if ownerID != m.owner {
		return nil, nil
	}
	return m.c.Leads, nil
}

func (m *memorySource) ListActivities(ownerID string, limit int) ([]models.TeamActivity, error) {
	if ownerID != m.owner {
		return nil, nil
	}
	return m.c.Activities, nil
}

func sampleSource() *memorySource {
	return &memorySource{
		owner: testOwner,
		c: workspace.Collections{
			TeamMembers: []models.TeamMember{
				{Name: "Sarah Johnson", Status: models.MemberStatusActive},
				{Name: "Mike Chen", Status: models.MemberStatusOnline},
			},
			Visits: []models.Visit{
				{LocationName: "TechCorp", VisitTime: workspaceNow.Add(-time.Hour)},
			},
			Leads: []models.Lead{
				{CompanyName: "TechCorp", Status: models.LeadStatusQualified, EstimatedValue: decimal.NewNullDecimal(decimal.NewFromInt(50000))},
			},
			Activities: []models.TeamActivity{
				{OwnedModel: models.OwnedModel{CreatedAt: workspaceNow}, Title: "Visit to TechCorp"},
			},
		},
	}
}

func githubClaims() *auth.AuthClaims {
	return &auth.AuthClaims{UserID: 1001, Username: "sarahj", Email: "sarah@company.com", Provider: "github"}
}

func TestWorkspaceSession_SignedOut(t *testing.T) {
	svc := service.NewWorkspaceService(workspace.NewLoader(sampleSource(), 0), nil)

	resp, err := svc.Session(context.Background(), nil, "leads", workspaceNow, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, workspace.StatusUnauthenticated, resp.Status)
	assert.Nil(t, resp.Identity)
	assert.Nil(t, resp.View)
	assert.Empty(t, resp.Collections.TeamMembers)
}

func TestWorkspaceSession_ProvisionsAndRendersDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	provisioning := mocks.NewMockProvisioningServiceInterface(ctrl)
	provisioning.EXPECT().EnsureDemoData(gomock.Any(), testOwner).Return(true, nil)
	svc := service.NewWorkspaceService(workspace.NewLoader(sampleSource(), 0), provisioning)

	resp, err := svc.Session(context.Background(), githubClaims(), "", workspaceNow, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, workspace.StatusAuthenticated, resp.Status)
	assert.True(t, resp.Provisioned)
	assert.Equal(t, workspace.TabDashboard, resp.ActiveTab)
	assert.Equal(t, workspace.Tabs, resp.Tabs)
	require.NotNil(t, resp.Identity)
	assert.Equal(t, "sarahj", resp.Identity.Name)
	assert.Len(t, resp.Collections.TeamMembers, 2)

	overview, ok := resp.View.(*analytics.OverviewSummary)
	require.True(t, ok, "dashboard renders the overview")
	assert.Equal(t, 1, overview.ActiveMembers)
	assert.Equal(t, 1, overview.TodayVisits)
	assert.Equal(t, 1, overview.QualifiedLeads)
}

func TestWorkspaceSession_ProvisioningFailureStillLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	provisioning := mocks.NewMockProvisioningServiceInterface(ctrl)
	provisioning.EXPECT().EnsureDemoData(gomock.Any(), testOwner).Return(false, errors.New("db down"))
	svc := service.NewWorkspaceService(workspace.NewLoader(sampleSource(), 0), provisioning)

	resp, err := svc.Session(context.Background(), githubClaims(), "team", workspaceNow, time.UTC)

	require.NoError(t, err)
	assert.False(t, resp.Provisioned)
	view, ok := resp.View.(*service.TeamView)
	require.True(t, ok)
	assert.Equal(t, 2, view.Status.Total)
}

func TestWorkspaceSession_LoadErrorIsReported(t *testing.T) {
	src := sampleSource()
	src.err = errors.New("connection refused")
	svc := service.NewWorkspaceService(workspace.NewLoader(src, 0), nil)

	resp, err := svc.Session(context.Background(), githubClaims(), "visits", workspaceNow, time.UTC)

	require.NoError(t, err)
	assert.Contains(t, resp.LoadError, "connection refused")
	assert.Empty(t, resp.Collections.TeamMembers)
}

func TestWorkspaceView_Tabs(t *testing.T) {
	svc := service.NewWorkspaceService(workspace.NewLoader(sampleSource(), 0), nil)
	testCases := []struct {
		tab    string
		expect workspace.Tab
		check  func(t *testing.T, view interface{})
	}{
		{tab: "visits", expect: workspace.TabVisits, check: func(t *testing.T, view interface{}) {
			v := view.(*service.VisitsView)
			assert.Equal(t, 1, v.Today)
		}},
		{tab: "leads", expect: workspace.TabLeads, check: func(t *testing.T, view interface{}) {
			v := view.(*service.PipelineView)
			assert.Len(t, v.Columns, len(models.LeadStatuses))
		}},
		{tab: "analytics", expect: workspace.TabAnalytics, check: func(t *testing.T, view interface{}) {
			v := view.(*analytics.AnalyticsReport)
			assert.Equal(t, 1, v.TotalVisits)
		}},
		{tab: "activity", expect: workspace.TabActivity, check: func(t *testing.T, view interface{}) {
			v := view.(*service.ActivityFeed)
			assert.Equal(t, 1, v.Total)
		}},
		{tab: "settings", expect: workspace.TabDashboard, check: func(t *testing.T, view interface{}) {
			_, ok := view.(*analytics.OverviewSummary)
			assert.True(t, ok)
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.tab, func(t *testing.T) {
			resp, err := svc.View(context.Background(), githubClaims(), tc.tab, workspaceNow, time.UTC)

			require.NoError(t, err)
			assert.Equal(t, tc.expect, resp.Tab)
			tc.check(t, resp.View)
		})
	}
}

func TestWorkspaceView_RequiresSignIn(t *testing.T) {
	svc := service.NewWorkspaceService(workspace.NewLoader(sampleSource(), 0), nil)

	_, err := svc.View(context.Background(), nil, "team", workspaceNow, time.UTC)

	assert.ErrorIs(t, err, apperrors.ErrNotSignedIn)
}

func TestWorkspace_OwnersAreIsolated(t *testing.T) {
	svc := service.NewWorkspaceService(workspace.NewLoader(sampleSource(), 0), nil)
	other := &auth.AuthClaims{UserID: 1001, Username: "sarahj", Provider: "githubtools"}

	resp, err := svc.View(context.Background(), other, "team", workspaceNow, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.View.(*service.TeamView).Status.Total)
}

func TestDashboardService(t *testing.T) {
	svc := service.NewDashboardService(workspace.NewLoader(sampleSource(), 0))

	overview, err := svc.Overview(testOwner, workspaceNow, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2, overview.TotalMembers)
	assert.True(t, decimal.NewFromInt(50000).Equal(overview.TotalLeadValue))

	report, err := svc.Analytics(testOwner, workspaceNow, time.UTC)
	require.NoError(t, err)
	assert.Len(t, report.VisitsByDay, 7)
	assert.Equal(t, 1, report.TotalVisits)
}

func TestDashboardService_LoadError(t *testing.T) {
	src := sampleSource()
	src.err = errors.New("timeout")
	svc := service.NewDashboardService(workspace.NewLoader(src, 0))

	_, err := svc.Overview(testOwner, workspaceNow, time.UTC)

	assert.ErrorContains(t, err, "timeout")
}
