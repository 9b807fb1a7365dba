package resources

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/labs"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
	"github.com/m04kA/SMC-AdminConsole/internal/service/partners"
	"github.com/m04kA/SMC-AdminConsole/internal/service/phlebotomists"
)

// LabsService лаборатории и администраторы лабораторий
type LabsService interface {
	Refresh(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	View(q onboarding.Query) resource.View[domain.Lab]
	Schema() form.Schema
	Submit(ctx context.Context, values map[string]interface{}) (*onboarding.Result[domain.Lab], error)

	Admins() *onboarding.Manager[domain.LabAdmin]
	AdminScreen(q onboarding.Query) labs.AdminScreen
	AdminSchema() form.Schema
	SubmitAdmin(ctx context.Context, values map[string]interface{}) (*onboarding.Result[domain.LabAdmin], error)
	WithLabOptions(schema form.Schema) form.Schema
}

// PhlebotomistsService флеботомисты
type PhlebotomistsService interface {
	Refresh(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	SetLabFilter(ctx context.Context, labID domain.ID) error
	Screen(q onboarding.Query) phlebotomists.Screen
	Schema() form.Schema
	SubmitWith(ctx context.Context, schema form.Schema, values map[string]interface{}) (*onboarding.Result[domain.Phlebotomist], error)
}

// PartnersService заявки партнёров
type PartnersService interface {
	Refresh(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	Screen(q onboarding.Query) partners.Screen
	Schema() form.Schema
	Submit(ctx context.Context, values map[string]interface{}) (*onboarding.Result[domain.PartnerRequest], error)
}

// PromoCodesService менеджер промокодов
type PromoCodesService interface {
	Refresh(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	View(q onboarding.Query) resource.View[domain.PromoCode]
	Schema() form.Schema
	Submit(ctx context.Context, values map[string]interface{}) (*onboarding.Result[domain.PromoCode], error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
