package partners

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
)

// ResourceName имя ресурса в API, метриках и аудите
const ResourceName = "partners"

// StatusTabs вкладки экрана заявок
var StatusTabs = []string{
	resource.StatusAll,
	string(domain.PartnerPending),
	string(domain.PartnerAccepted),
	string(domain.PartnerRejected),
}

// Screen состояние экрана заявок партнёров
type Screen struct {
	List     resource.View[domain.PartnerRequest] `json:"list"`
	Tabs     []string                             `json:"tabs"`
	InFlight map[string]string                    `json:"inFlight"`
	Confirm  *resource.Prompt                     `json:"confirm,omitempty"`
}

// ActionResult результат approve/reject
type ActionResult struct {
	Record  domain.PartnerRequest
	Message string
}

// Service заявки партнёров: список, регистрация, подтверждаемые approve/reject
type Service struct {
	*onboarding.Manager[domain.PartnerRequest]

	client   BackendClient
	inFlight *resource.InFlight
	confirm  *resource.Confirmation
	tracker  Tracker
	logger   Logger
}

// NewService создает новый экземпляр сервиса заявок партнёров
func NewService(client BackendClient, pageSize int, tracker Tracker, logger Logger) *Service {
	source := onboarding.Funcs[domain.PartnerRequest]{
		ListFunc:   client.ListPartnerRequests,
		CreateFunc: client.RegisterPartner,
	}
	return &Service{
		Manager:  onboarding.NewManager[domain.PartnerRequest](ResourceName, pageSize, form.PartnerSchema(), source, tracker, logger),
		client:   client,
		inFlight: resource.NewInFlight(),
		confirm:  resource.NewConfirmation(),
		tracker:  tracker,
		logger:   logger,
	}
}

// Screen список + занятые строки + открытое подтверждение
func (s *Service) Screen(q onboarding.Query) Screen {
	screen := Screen{
		List:     s.View(q),
		Tabs:     StatusTabs,
		InFlight: s.inFlight.Snapshot(),
	}
	if p, ok := s.confirm.Pending(); ok {
		screen.Confirm = &p
	}
	return screen
}

// AskConfirm открывает подтверждение действия над заявкой
func (s *Service) AskConfirm(id domain.ID, action string) (resource.Prompt, error) {
	act, ok := domain.ParsePartnerAction(action)
	if !ok {
		return resource.Prompt{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	req, ok := s.List().Get(id.String())
	if !ok {
		s.logger.Warn("AskConfirm: request id=%s not found", id)
		return resource.Prompt{}, ErrRequestNotFound
	}
	if running, busy := s.inFlight.Active(id.String()); busy {
		s.logger.Warn("AskConfirm: %s for id=%s while %s is in progress", act, id, running)
		return resource.Prompt{}, resource.ErrBusy
	}

	name := req.FullName()
	if req.ShopName != "" {
		name = fmt.Sprintf("%s (%s)", name, req.ShopName)
	}

	s.logger.Info("AskConfirm: %s requested for id=%s", act, id)
	return s.confirm.Ask(id.String(), string(act), name), nil
}

// CancelConfirm закрывает подтверждение без действия
func (s *Service) CancelConfirm() {
	s.confirm.Cancel()
}

// Perform выполняет подтверждённое действие
// Меняется статус только одной заявки; флаг выполнения снимается и при ошибке
func (s *Service) Perform(ctx context.Context, id domain.ID, action string) (*ActionResult, error) {
	act, ok := domain.ParsePartnerAction(action)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	key := id.String()

	// Подтверждение расходуется только после того, как запись занята
	if !s.inFlight.Begin(key, string(act)) {
		s.logger.Warn("Perform: action already in progress for id=%s", id)
		return nil, resource.ErrBusy
	}
	defer s.inFlight.End(key)

	if _, err := s.confirm.Take(key, string(act)); err != nil {
		s.logger.Warn("Perform: %s for id=%s without confirmation", act, id)
		return nil, err
	}

	var (
		acted *backend.Acted[domain.PartnerRequest]
		err   error
	)
	switch act {
	case domain.ActionApprove:
		acted, err = s.client.ApprovePartnerRequest(ctx, id)
	case domain.ActionReject:
		acted, err = s.client.RejectPartnerRequest(ctx, id)
	}
	if err != nil {
		s.logger.Error("Perform: %s failed for id=%s: %v", act, id, err)
		s.tracker.Track(ctx, ResourceName, string(act), key, err, "")
		return nil, fmt.Errorf("%w: %s: %w", ErrActionFailed, act, err)
	}

	target, _ := act.TargetStatus()
	var updated domain.PartnerRequest
	uerr := s.List().Update(key, func(req domain.PartnerRequest) domain.PartnerRequest {
		if acted.Record != nil && acted.Record.ID == req.ID {
			req = *acted.Record
		}
		req.Status = target
		updated = req
		return req
	})
	if uerr != nil {
		// Действие выполнено в backend; список перезагружен или запись исчезла
		s.logger.Warn("Perform: %s done for id=%s but local list not updated: %v", act, id, uerr)
		if acted.Record != nil {
			updated = *acted.Record
		}
		updated.ID = id
		updated.Status = target
	}

	message := acted.Message
	if message == "" {
		message = successMessage(act)
	}

	s.tracker.Track(ctx, ResourceName, string(act), key, nil, message)
	s.logger.Info("Perform: request id=%s is now %s", id, target)
	return &ActionResult{Record: updated, Message: message}, nil
}

func successMessage(act domain.PartnerAction) string {
	if act == domain.ActionApprove {
		return "Partner request approved"
	}
	return "Partner request rejected"
}
