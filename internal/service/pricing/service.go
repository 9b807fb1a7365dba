package pricing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

const (
	ResourceName = "pricing"

	actionUpload   = "upload"
	csvContentType = "text/csv"

	// MaxFileSize предел размера прайс-листа
	MaxFileSize = 10 << 20
)

// Request загрузка прайс-листа партнёра
type Request struct {
	Type        string
	LabID       domain.ID
	PartnerType string
	FileName    string
	Content     []byte
}

// Service загрузка прайс-листов партнёров (CSV)
// Соответствие колонок проверяет backend; локально проверяется только наличие и вид файла
type Service struct {
	client  BackendClient
	archive Archive
	tracker Tracker
	logger  Logger
}

// NewService создает новый экземпляр сервиса; archive может быть nil
func NewService(client BackendClient, archive Archive, tracker Tracker, logger Logger) *Service {
	return &Service{
		client:  client,
		archive: archive,
		tracker: tracker,
		logger:  logger,
	}
}

// Validate локальная проверка запроса до сетевого вызова
func Validate(req Request) form.Errors {
	errs := form.Errors{}

	if _, ok := domain.ParsePricingType(req.Type); !ok {
		errs["type"] = "Pricing type must be tests or packages"
	}
	if strings.TrimSpace(req.LabID.String()) == "" {
		errs["lab"] = "Lab is required"
	}
	if strings.TrimSpace(req.PartnerType) == "" {
		errs["partnerType"] = "Partner type is required"
	}

	switch {
	case strings.TrimSpace(req.FileName) == "" && len(req.Content) == 0:
		errs["file"] = "Select a CSV file"
	case !strings.EqualFold(filepath.Ext(req.FileName), ".csv"):
		errs["file"] = "Only .csv files are supported"
	case len(bytes.TrimSpace(req.Content)) == 0:
		errs["file"] = "The selected file is empty"
	case len(req.Content) > MaxFileSize:
		errs["file"] = "The selected file is too large"
	}
	return errs
}

// Upload проверяет запрос, отправляет файл в backend и при наличии архива сохраняет копию
func (s *Service) Upload(ctx context.Context, req Request) (*domain.PricingResult, error) {
	if errs := Validate(req); len(errs) > 0 {
		s.logger.Warn("Upload: invalid pricing upload: %v", errs)
		return nil, &form.ValidationError{Form: ResourceName, Fields: errs}
	}
	pricingType, _ := domain.ParsePricingType(req.Type)

	if header, err := readHeader(req.Content); err != nil {
		s.logger.Warn("Upload: cannot read CSV header of %s: %v", req.FileName, err)
	} else {
		s.logger.Info("Upload: %s sheet %s for lab=%s partnerType=%s, columns=%s",
			pricingType, req.FileName, req.LabID, req.PartnerType, strings.Join(header, "|"))
	}

	target := fmt.Sprintf("%s/%s/%s", pricingType, req.LabID, req.PartnerType)
	result, err := s.client.UploadPricingCSV(ctx, backend.PricingUpload{
		Type:        pricingType,
		LabID:       req.LabID,
		PartnerType: strings.TrimSpace(req.PartnerType),
		FileName:    filepath.Base(req.FileName),
		Content:     req.Content,
	})
	if err != nil {
		s.logger.Error("Upload: backend rejected %s: %v", target, err)
		s.tracker.Track(ctx, ResourceName, actionUpload, target, err, "")
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	if result.Message == "" {
		result.Message = fmt.Sprintf("Pricing uploaded: %d rows imported", result.FinalCount)
	}

	if s.archive != nil {
		key, err := s.archive.Put(ctx, string(pricingType), filepath.Base(req.FileName), req.Content, csvContentType)
		if err != nil {
			// Загрузка уже принята backend, копия не обязательна
			s.logger.Warn("Upload: failed to archive %s: %v", req.FileName, err)
		} else {
			result.ArchiveKey = key
		}
	}

	s.tracker.Track(ctx, ResourceName, actionUpload, target, nil, result.Message)
	s.logger.Info("Upload: %s accepted, finalCount=%d", target, result.FinalCount)
	return result, nil
}

// readHeader первая строка CSV (только для журнала)
func readHeader(content []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	return header, nil
}
