package upload_pricing

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/pricing"
)

const (
	fieldFile        = "file"
	fieldLab         = "lab"
	fieldPartnerType = "partnerType"

	// formOverhead запас на поля формы сверх размера файла
	formOverhead = 1 << 20
)

var errFileTooLarge = errors.New("file is too large")

// parseRequest собирает запрос загрузки из multipart формы
// Отсутствующий файл не ошибка: это поле проверяется при валидации
func parseRequest(r *http.Request) (pricing.Request, error) {
	req := pricing.Request{Type: mux.Vars(r)["type"]}

	if err := r.ParseMultipartForm(pricing.MaxFileSize + formOverhead); err != nil {
		return req, fmt.Errorf("parse multipart form: %w", err)
	}

	req.LabID = domain.ID(r.FormValue(fieldLab))
	req.PartnerType = r.FormValue(fieldPartnerType)

	file, header, err := r.FormFile(fieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil
	}
	if err != nil {
		return req, fmt.Errorf("read file: %w", err)
	}
	defer file.Close()

	if header.Size > pricing.MaxFileSize {
		return req, errFileTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(file, pricing.MaxFileSize+1))
	if err != nil {
		return req, fmt.Errorf("read file: %w", err)
	}
	if len(content) > pricing.MaxFileSize {
		return req, errFileTooLarge
	}

	req.FileName = header.Filename
	req.Content = content
	return req, nil
}
