package labs

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
)

const (
	ResourceName      = "labs"
	AdminResourceName = "lab-admins"

	actionAddPackage = "add-package"
	actionAddTest    = "add-test"
)

// AdminRow администратор лаборатории с названием лаборатории для отображения
type AdminRow struct {
	domain.LabAdmin
	LabName string `json:"labName"`
}

// AdminScreen экран администраторов лабораторий
type AdminScreen struct {
	Items      []AdminRow     `json:"items"`
	Total      int            `json:"total"`
	Filtered   int            `json:"filtered"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	PageSize   int            `json:"pageSize"`
	Query      string         `json:"query"`
	State      resource.State `json:"state"`
	Error      string         `json:"error,omitempty"`
}

// Service лаборатории (с пакетами и тестами) и администраторы лабораторий
type Service struct {
	*onboarding.Manager[domain.Lab]

	admins  *onboarding.Manager[domain.LabAdmin]
	client  BackendClient
	tracker Tracker
	logger  Logger
}

// NewService создает новый экземпляр сервиса лабораторий
func NewService(client BackendClient, pageSize int, tracker Tracker, logger Logger) *Service {
	labsSource := onboarding.Funcs[domain.Lab]{
		ListFunc:   client.ListLabs,
		CreateFunc: client.CreateLab,
	}
	adminsSource := onboarding.Funcs[domain.LabAdmin]{
		ListFunc:   client.ListLabAdmins,
		CreateFunc: client.RegisterLabAdmin,
	}
	return &Service{
		Manager: onboarding.NewManager[domain.Lab](ResourceName, pageSize, form.LabSchema(), labsSource, tracker, logger),
		admins:  onboarding.NewManager[domain.LabAdmin](AdminResourceName, pageSize, form.LabAdminSchema(), adminsSource, tracker, logger),
		client:  client,
		tracker: tracker,
		logger:  logger,
	}
}

// Admins менеджер администраторов лабораторий
func (s *Service) Admins() *onboarding.Manager[domain.LabAdmin] {
	return s.admins
}

// LabOptions варианты выбора лаборатории для форм
func (s *Service) LabOptions() []form.Option {
	labs := s.List().Items()
	options := make([]form.Option, 0, len(labs))
	for _, lab := range labs {
		options = append(options, form.Option{Value: lab.ID.String(), Label: lab.Name})
	}
	return options
}

// WithLabOptions схема с выбором из загруженных лабораторий
// Пока список не загружен, выбор не ограничивается
func (s *Service) WithLabOptions(schema form.Schema) form.Schema {
	if s.List().State() != resource.StateReady {
		return schema
	}
	return schema.WithOptions("labId", s.LabOptions())
}

// AdminSchema форма регистрации администратора лаборатории
func (s *Service) AdminSchema() form.Schema {
	return s.WithLabOptions(s.admins.Schema())
}

// SubmitAdmin регистрирует администратора лаборатории
func (s *Service) SubmitAdmin(ctx context.Context, values map[string]interface{}) (*onboarding.Result[domain.LabAdmin], error) {
	return s.admins.SubmitWith(ctx, s.AdminSchema(), values)
}

// AdminScreen страница администраторов с названиями лабораторий (линейный поиск по списку лабораторий)
func (s *Service) AdminScreen(q onboarding.Query) AdminScreen {
	view := s.admins.View(q)
	labs := s.List().Items()

	rows := make([]AdminRow, 0, len(view.Items))
	for _, admin := range view.Items {
		rows = append(rows, AdminRow{LabAdmin: admin, LabName: domain.LabName(labs, admin.LabID)})
	}

	return AdminScreen{
		Items:      rows,
		Total:      view.Total,
		Filtered:   view.Filtered,
		Page:       view.Page,
		TotalPages: view.TotalPages,
		PageSize:   view.PageSize,
		Query:      view.Query,
		State:      view.State,
		Error:      view.Error,
	}
}

// AddPackage создает пакет анализов и добавляет его в начало пакетов лаборатории
func (s *Service) AddPackage(ctx context.Context, labID domain.ID, values map[string]interface{}) (*onboarding.Result[domain.Package], error) {
	return addNested[domain.Package](ctx, s, labID, form.PackageSchema(), values, actionAddPackage,
		s.client.CreatePackage,
		func(p domain.Package) domain.Package {
			if p.LabID == "" {
				p.LabID = labID
			}
			return p
		},
		func(lab domain.Lab, p domain.Package) domain.Lab {
			lab.Packages = append([]domain.Package{p}, lab.Packages...)
			return lab
		})
}

// AddTest создает тест и добавляет его в начало тестов лаборатории
func (s *Service) AddTest(ctx context.Context, labID domain.ID, values map[string]interface{}) (*onboarding.Result[domain.Test], error) {
	return addNested[domain.Test](ctx, s, labID, form.TestSchema(), values, actionAddTest,
		s.client.CreateTest,
		func(t domain.Test) domain.Test {
			if t.LabID == "" {
				t.LabID = labID
			}
			return t
		},
		func(lab domain.Lab, t domain.Test) domain.Lab {
			lab.Tests = append([]domain.Test{t}, lab.Tests...)
			return lab
		})
}

type createFunc[T any] func(ctx context.Context, labID domain.ID, payload map[string]interface{}) (*backend.Created[T], error)

// addNested создает вложенную запись лаборатории.
// attach дополняет созданную запись до вставки в список и возврата клиенту
func addNested[T any](
	ctx context.Context,
	s *Service,
	labID domain.ID,
	schema form.Schema,
	values map[string]interface{},
	action string,
	create createFunc[T],
	attach func(T) T,
	merge func(domain.Lab, T) domain.Lab,
) (*onboarding.Result[T], error) {
	payload, err := schema.Submit(values)
	if err != nil {
		s.logger.Warn("%s: form is invalid for lab=%s: %v", action, labID, err)
		return nil, err
	}

	key := labID.String()
	if _, ok := s.List().Get(key); !ok {
		s.logger.Warn("%s: lab=%s not found", action, labID)
		return nil, ErrLabNotFound
	}

	created, err := create(ctx, labID, payload)
	if err != nil {
		s.logger.Error("%s: failed for lab=%s: %v", action, labID, err)
		s.tracker.Track(ctx, ResourceName, action, key, err, "")
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateFailed, action, err)
	}

	record := attach(created.Record)
	if err := s.List().Update(key, func(lab domain.Lab) domain.Lab {
		return merge(lab, record)
	}); err != nil {
		s.logger.Warn("%s: created for lab=%s but local list not updated: %v", action, labID, err)
	}

	s.tracker.Track(ctx, ResourceName, action, key, nil, created.Message)
	s.logger.Info("%s: created for lab=%s", action, labID)
	return &onboarding.Result[T]{Record: record, Message: created.Message}, nil
}
