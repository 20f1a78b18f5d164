package service

import (
	"context"
	"time"

	"field-marketing-backend/internal/auth"
	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/logger"
	"field-marketing-backend/internal/workspace"
)

// SessionResponse is the full signed-in workspace
type SessionResponse struct {
	Status      workspace.Status      `json:"status" example:"authenticated"`
	Identity    *workspace.Identity   `json:"identity,omitempty"`
	Tabs        []workspace.Tab       `json:"tabs"`
	ActiveTab   workspace.Tab         `json:"active_tab" example:"dashboard"`
	Provisioned bool                  `json:"provisioned"`
	Collections workspace.Collections `json:"collections"`
	View        interface{}           `json:"view,omitempty"`
	LoadError   string                `json:"load_error,omitempty"`
}

// ViewResponse is the payload of a single tab
type ViewResponse struct {
	Tab  workspace.Tab `json:"tab" example:"analytics"`
	View interface{}   `json:"view"`
}

// WorkspaceService runs the per-request session flow: observe the
// signed-in user, provision demo data once, load and render a tab.
type WorkspaceService struct {
	loader       *workspace.Loader
	provisioning ProvisioningServiceInterface
}

// NewWorkspaceService creates a workspace service. provisioning may be nil
// to disable demo data.
func NewWorkspaceService(loader *workspace.Loader, provisioning ProvisioningServiceInterface) *WorkspaceService {
	return &WorkspaceService{loader: loader, provisioning: provisioning}
}

// IdentityFromClaims maps token claims to a workspace identity
func IdentityFromClaims(claims *auth.AuthClaims) *workspace.Identity {
	if claims == nil {
		return nil
	}
	name := claims.Name
	if name == "" {
		name = claims.Username
	}
	return &workspace.Identity{OwnerID: claims.OwnerID(), Name: name, Email: claims.Email}
}

// Session returns the workspace for claims. A failed load keeps the empty
// collections and reports the failure in LoadError.
func (s *WorkspaceService) Session(ctx context.Context, claims *auth.AuthClaims, tab string, now time.Time, loc *time.Location) (*SessionResponse, error) {
	state, provisioned := s.open(ctx, claims)
	resp := &SessionResponse{
		Status:      state.Status(),
		Identity:    state.Identity(),
		Tabs:        workspace.Tabs,
		ActiveTab:   state.SetActiveTab(tab),
		Provisioned: provisioned,
	}
	if resp.Status != workspace.StatusAuthenticated {
		resp.Collections = state.Collections()
		return resp, nil
	}

	if err := s.loader.Load(state); err != nil {
		logger.WithContext(ctx).Warnf("Failed to load workspace: %v", err)
		resp.LoadError = err.Error()
	}
	resp.Collections = state.Collections()
	resp.View = renderTab(resp.ActiveTab, resp.Collections, now, loc)
	return resp, nil
}

// View renders one tab. Unknown tab names render the dashboard.
func (s *WorkspaceService) View(ctx context.Context, claims *auth.AuthClaims, tab string, now time.Time, loc *time.Location) (*ViewResponse, error) {
	state, _ := s.open(ctx, claims)
	active := state.SetActiveTab(tab)
	if state.Status() != workspace.StatusAuthenticated {
		return nil, apperrors.ErrNotSignedIn
	}
	if err := s.loader.Load(state); err != nil {
		return nil, err
	}
	return &ViewResponse{Tab: active, View: renderTab(active, state.Collections(), now, loc)}, nil
}

// open builds a fresh State from the claims and provisions the owner
func (s *WorkspaceService) open(ctx context.Context, claims *auth.AuthClaims) (*workspace.State, bool) {
	state := workspace.NewState()
	state.Observe(workspace.Snapshot{Identity: IdentityFromClaims(claims)})
	if state.Status() != workspace.StatusAuthenticated || s.provisioning == nil {
		return state, false
	}

	seeded, err := s.provisioning.EnsureDemoData(ctx, state.OwnerID())
	if err != nil {
		// the workspace still loads, just without sample data
		logger.WithContext(ctx).Warnf("Demo provisioning failed: %v", err)
	}
	return state, seeded
}
