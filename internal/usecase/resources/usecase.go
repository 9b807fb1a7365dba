package resources

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
)

// Имена экранов в API
const (
	Labs          = "labs"
	LabAdmins     = "lab-admins"
	Phlebotomists = "phlebotomists"
	PromoCodes    = "promo-codes"
	Partners      = "partners"
)

// screen операции одного экрана онбординга
type screen struct {
	filter  func(ctx context.Context, p Params) error
	ensure  func(ctx context.Context) error
	refresh func(ctx context.Context) error
	view    func(ctx context.Context, p Params) (interface{}, error)
	form    func(ctx context.Context) FormView
	create  func(ctx context.Context, values map[string]interface{}) (*Created, error)
}

// UseCase экраны онбординга: список, обновление, схема формы, создание
// Связывает сервисы между собой (выбор лаборатории в формах админов и флеботомистов)
type UseCase struct {
	screens map[string]screen
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	labsSvc LabsService,
	phlebosSvc PhlebotomistsService,
	partnersSvc PartnersService,
	promoCodes PromoCodesService,
	logger Logger,
) *UseCase {
	uc := &UseCase{logger: logger}

	// Ошибка загрузки лабораторий не блокирует форму - выбор просто не ограничивается
	ensureLabs := func(ctx context.Context) {
		if err := labsSvc.EnsureLoaded(ctx); err != nil {
			logger.Warn("Resources: labs are unavailable for lab selection: %v", err)
		}
	}

	uc.screens = map[string]screen{
		Labs: {
			ensure:  labsSvc.EnsureLoaded,
			refresh: labsSvc.Refresh,
			view: func(_ context.Context, p Params) (interface{}, error) {
				return labsSvc.View(query(p)), nil
			},
			form: func(context.Context) FormView { return newFormView(labsSvc.Schema()) },
			create: func(ctx context.Context, values map[string]interface{}) (*Created, error) {
				res, err := labsSvc.Submit(ctx, values)
				if err != nil {
					return nil, err
				}
				return &Created{Record: res.Record, Message: res.Message}, nil
			},
		},
		LabAdmins: {
			ensure: func(ctx context.Context) error {
				ensureLabs(ctx)
				return labsSvc.Admins().EnsureLoaded(ctx)
			},
			refresh: labsSvc.Admins().Refresh,
			view: func(_ context.Context, p Params) (interface{}, error) {
				return labsSvc.AdminScreen(query(p)), nil
			},
			form: func(ctx context.Context) FormView {
				ensureLabs(ctx)
				return newFormView(labsSvc.AdminSchema())
			},
			create: func(ctx context.Context, values map[string]interface{}) (*Created, error) {
				ensureLabs(ctx)
				res, err := labsSvc.SubmitAdmin(ctx, values)
				if err != nil {
					return nil, err
				}
				return &Created{Record: res.Record, Message: res.Message}, nil
			},
		},
		Phlebotomists: {
			// Фильтр по лаборатории применяется до загрузки, чтобы не грузить список дважды
			filter: func(ctx context.Context, p Params) error {
				return phlebosSvc.SetLabFilter(ctx, domain.ID(p.LabID))
			},
			ensure:  phlebosSvc.EnsureLoaded,
			refresh: phlebosSvc.Refresh,
			view: func(_ context.Context, p Params) (interface{}, error) {
				return phlebosSvc.Screen(query(p)), nil
			},
			form: func(ctx context.Context) FormView {
				ensureLabs(ctx)
				return newFormView(labsSvc.WithLabOptions(phlebosSvc.Schema()))
			},
			create: func(ctx context.Context, values map[string]interface{}) (*Created, error) {
				ensureLabs(ctx)
				res, err := phlebosSvc.SubmitWith(ctx, labsSvc.WithLabOptions(phlebosSvc.Schema()), values)
				if err != nil {
					return nil, err
				}
				return &Created{Record: res.Record, Message: res.Message}, nil
			},
		},
		PromoCodes: {
			ensure:  promoCodes.EnsureLoaded,
			refresh: promoCodes.Refresh,
			view: func(_ context.Context, p Params) (interface{}, error) {
				return promoCodes.View(query(p)), nil
			},
			form: func(context.Context) FormView { return newFormView(promoCodes.Schema()) },
			create: func(ctx context.Context, values map[string]interface{}) (*Created, error) {
				res, err := promoCodes.Submit(ctx, values)
				if err != nil {
					return nil, err
				}
				return &Created{Record: res.Record, Message: res.Message}, nil
			},
		},
		Partners: {
			ensure:  partnersSvc.EnsureLoaded,
			refresh: partnersSvc.Refresh,
			view: func(_ context.Context, p Params) (interface{}, error) {
				return partnersSvc.Screen(query(p)), nil
			},
			form: func(context.Context) FormView { return newFormView(partnersSvc.Schema()) },
			create: func(ctx context.Context, values map[string]interface{}) (*Created, error) {
				res, err := partnersSvc.Submit(ctx, values)
				if err != nil {
					return nil, err
				}
				return &Created{Record: res.Record, Message: res.Message}, nil
			},
		},
	}
	return uc
}

// Names имена доступных экранов
func (uc *UseCase) Names() []string {
	names := make([]string, 0, len(uc.screens))
	for name := range uc.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List страница списка; при первом обращении список загружается из backend
// Ошибка загрузки не возвращается: она отражена в состоянии списка (state=error)
func (uc *UseCase) List(ctx context.Context, name string, p Params) (interface{}, error) {
	s, err := uc.screen(name)
	if err != nil {
		return nil, err
	}
	if p.Page < 0 {
		return nil, fmt.Errorf("%w: page must be positive", ErrInvalidParams)
	}

	if s.filter != nil {
		if err := s.filter(ctx, p); err != nil {
			uc.logger.Warn("List: %s reload with filter failed: %v", name, err)
		}
	}
	if err := s.ensure(ctx); err != nil {
		uc.logger.Warn("List: %s is in error state: %v", name, err)
	}
	return s.view(ctx, p)
}

// Refresh перезагружает список и возвращает первую страницу
func (uc *UseCase) Refresh(ctx context.Context, name string, p Params) (interface{}, error) {
	s, err := uc.screen(name)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Refresh: reloading %s", name)
	refreshErr := s.refresh(ctx)

	p.Page = 1
	view, err := s.view(ctx, p)
	if err != nil {
		return nil, err
	}
	return view, refreshErr
}

// Form схема формы создания
func (uc *UseCase) Form(ctx context.Context, name string) (*FormView, error) {
	s, err := uc.screen(name)
	if err != nil {
		return nil, err
	}
	fv := s.form(ctx)
	return &fv, nil
}

// Create отправляет форму создания
// Список должен быть загружен: созданная запись вставляется в его начало
func (uc *UseCase) Create(ctx context.Context, name string, values map[string]interface{}) (*Created, error) {
	s, err := uc.screen(name)
	if err != nil {
		return nil, err
	}

	if err := s.ensure(ctx); err != nil {
		uc.logger.Warn("Create: %s list is unavailable: %v", name, err)
	}
	return s.create(ctx, values)
}

func (uc *UseCase) screen(name string) (screen, error) {
	s, ok := uc.screens[name]
	if !ok {
		return screen{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownResource, name, strings.Join(uc.Names(), ", "))
	}
	return s, nil
}

func query(p Params) onboarding.Query {
	return onboarding.Query{Search: p.Query, Status: p.Status, Page: p.Page}
}
