package partners

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

type fakeClient struct {
	mu       sync.Mutex
	items    []domain.PartnerRequest
	err      error
	record   *domain.PartnerRequest
	block    chan struct{}
	started  chan struct{}
	approved []domain.ID
	rejected []domain.ID
}

func (f *fakeClient) ListPartnerRequests(context.Context) ([]domain.PartnerRequest, error) {
	out := make([]domain.PartnerRequest, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeClient) ApprovePartnerRequest(_ context.Context, id domain.ID) (*backend.Acted[domain.PartnerRequest], error) {
	f.mu.Lock()
	f.approved = append(f.approved, id)
	f.mu.Unlock()
	return f.respond()
}

func (f *fakeClient) RejectPartnerRequest(_ context.Context, id domain.ID) (*backend.Acted[domain.PartnerRequest], error) {
	f.mu.Lock()
	f.rejected = append(f.rejected, id)
	f.mu.Unlock()
	return f.respond()
}

func (f *fakeClient) respond() (*backend.Acted[domain.PartnerRequest], error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &backend.Acted[domain.PartnerRequest]{Record: f.record}, nil
}

func (f *fakeClient) RegisterPartner(_ context.Context, payload map[string]interface{}) (*backend.Created[domain.PartnerRequest], error) {
	return &backend.Created[domain.PartnerRequest]{Record: domain.PartnerRequest{ID: "new", FirstName: payload["firstName"].(string), Status: domain.PartnerPending}}, nil
}

type nopTracker struct{}

func (nopTracker) Track(context.Context, string, string, string, error, string) {}

func newService(t *testing.T, client *fakeClient) *Service {
	t.Helper()
	s := NewService(client, 8, nopTracker{}, logger.NewNop())
	require.NoError(t, s.Refresh(context.Background()))
	return s
}

func scenarioItems() []domain.PartnerRequest {
	return []domain.PartnerRequest{
		{ID: "1", Status: domain.PartnerPending, FirstName: "A"},
		{ID: "2", Status: domain.PartnerPending, FirstName: "B"},
	}
}

func TestPerform_ApproveChangesOnlyTargetRecord(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{items: scenarioItems()}
	s := newService(t, client)

	_, err := s.AskConfirm("1", "approve")
	require.NoError(t, err)

	res, err := s.Perform(ctx, "1", "approve")
	require.NoError(t, err)
	assert.Equal(t, domain.PartnerAccepted, res.Record.Status)
	assert.Equal(t, "Partner request approved", res.Message)

	assert.Equal(t, []domain.PartnerRequest{
		{ID: "1", Status: domain.PartnerAccepted, FirstName: "A"},
		{ID: "2", Status: domain.PartnerPending, FirstName: "B"},
	}, s.List().Items())

	screen := s.Screen(onboarding.Query{})
	assert.Nil(t, screen.Confirm, "confirmation closed")
	assert.Empty(t, screen.InFlight)
	assert.Equal(t, []domain.ID{"1"}, client.approved)
}

func TestPerform_RejectUsesServerRecord(t *testing.T) {
	client := &fakeClient{
		items:  scenarioItems(),
		record: &domain.PartnerRequest{ID: "2", FirstName: "B", ShopName: "B Pharmacy", Status: domain.PartnerRejected},
	}
	s := newService(t, client)

	_, err := s.AskConfirm("2", "REJECT")
	require.NoError(t, err)
	_, err = s.Perform(context.Background(), "2", "reject")
	require.NoError(t, err)

	got, ok := s.List().Get("2")
	require.True(t, ok)
	assert.Equal(t, domain.PartnerRejected, got.Status)
	assert.Equal(t, "B Pharmacy", got.ShopName)

	first, _ := s.List().Get("1")
	assert.Equal(t, domain.PartnerPending, first.Status)
}

func TestPerform_FailureClearsInFlightAndKeepsList(t *testing.T) {
	ctx := context.Background()
	apiErr := &backend.ActionError{Op: "ApprovePartnerRequest", Message: "request already processed", Err: backend.ErrAPI}
	client := &fakeClient{items: scenarioItems(), err: apiErr}
	s := newService(t, client)

	_, err := s.AskConfirm("1", "approve")
	require.NoError(t, err)

	_, err = s.Perform(ctx, "1", "approve")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrActionFailed)
	assert.ErrorIs(t, err, backend.ErrAPI)

	var actionErr *backend.ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, "request already processed", actionErr.UserMessage())

	screen := s.Screen(onboarding.Query{})
	assert.Empty(t, screen.InFlight, "in-flight flag cleared on failure")
	assert.Nil(t, screen.Confirm)
	assert.Equal(t, scenarioItems(), s.List().Items())
}

func TestPerform_RequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{items: scenarioItems()}
	s := newService(t, client)

	_, err := s.Perform(ctx, "1", "approve")
	assert.ErrorIs(t, err, resource.ErrNoConfirmation)

	_, err = s.AskConfirm("1", "approve")
	require.NoError(t, err)
	_, err = s.Perform(ctx, "1", "reject")
	assert.ErrorIs(t, err, resource.ErrNoConfirmation)

	s.CancelConfirm()
	_, err = s.Perform(ctx, "1", "approve")
	assert.ErrorIs(t, err, resource.ErrNoConfirmation, "cancel clears the prompt")

	assert.Empty(t, client.approved)
	assert.Empty(t, client.rejected)
}

func TestAskConfirm_Validation(t *testing.T) {
	s := newService(t, &fakeClient{items: []domain.PartnerRequest{
		{ID: "1", FirstName: "Asha", LastName: "K", ShopName: "Asha Chemists", Status: domain.PartnerPending},
	}})

	_, err := s.AskConfirm("1", "delete")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = s.AskConfirm("9", "approve")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	p, err := s.AskConfirm("1", "approve")
	require.NoError(t, err)
	assert.Equal(t, resource.Prompt{Key: "1", Action: "approve", Name: "Asha K (Asha Chemists)"}, p)
}

func TestPerform_SameRowIsRejectedWhileInFlight(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{items: scenarioItems(), block: make(chan struct{}), started: make(chan struct{}, 1)}
	s := newService(t, client)

	_, err := s.AskConfirm("1", "approve")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.Perform(ctx, "1", "approve")
		done <- err
	}()
	<-client.started

	assert.Equal(t, map[string]string{"1": "approve"}, s.Screen(onboarding.Query{}).InFlight)

	_, err = s.AskConfirm("1", "reject")
	assert.ErrorIs(t, err, resource.ErrBusy, "no prompt for a row with an action in progress")
	_, err = s.Perform(ctx, "1", "reject")
	assert.ErrorIs(t, err, resource.ErrBusy)

	close(client.block)
	require.NoError(t, <-done)
	assert.Empty(t, client.rejected)
}

func TestPerform_BusyRowKeepsPendingPrompt(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{items: scenarioItems(), block: make(chan struct{}), started: make(chan struct{}, 1)}
	s := newService(t, client)

	_, err := s.AskConfirm("1", "approve")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.Perform(ctx, "1", "approve")
		done <- err
	}()
	<-client.started

	// Подтверждение, открытое до того, как запись стала занятой
	s.confirm.Ask("1", "reject", "A")

	_, err = s.Perform(ctx, "1", "reject")
	assert.ErrorIs(t, err, resource.ErrBusy)

	pending, ok := s.confirm.Pending()
	require.True(t, ok, "rejected call leaves the prompt open")
	assert.Equal(t, "reject", pending.Action)

	close(client.block)
	require.NoError(t, <-done)

	_, err = s.Perform(ctx, "1", "reject")
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{"1"}, client.rejected)
}

func TestScreen_StatusTabs(t *testing.T) {
	s := newService(t, &fakeClient{items: []domain.PartnerRequest{
		{ID: "1", Status: domain.PartnerPending},
		{ID: "2", Status: domain.PartnerAccepted},
		{ID: "3", Status: domain.PartnerPending},
	}})

	screen := s.Screen(onboarding.Query{Status: "pending"})
	assert.Equal(t, StatusTabs, screen.Tabs)
	require.Len(t, screen.List.Items, 2)
	for _, item := range screen.List.Items {
		assert.Equal(t, domain.PartnerPending, item.Status)
	}
}

func TestRegister_PrependsPendingRequest(t *testing.T) {
	s := newService(t, &fakeClient{items: scenarioItems()})

	res, err := s.Submit(context.Background(), map[string]interface{}{
		"firstName":   "Meera",
		"email":       "meera@gym.in",
		"mobile":      "9876543210",
		"partnerType": "GYM",
		"shopName":    "Fit Gym",
		"pincode":     "400001",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("new"), res.Record.ID)
	assert.Equal(t, domain.ID("new"), s.List().Items()[0].ID)
}
