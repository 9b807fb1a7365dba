package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// PricingUpload прайс-лист партнёра для загрузки
type PricingUpload struct {
	Type        domain.PricingType
	LabID       domain.ID
	PartnerType string
	FileName    string
	Content     []byte
}

// UploadPricingCSV POST /admin/pricing/:type?lab=&partnerType= (multipart, поле "file")
// Соответствие колонок проверяет только backend
func (c *Client) UploadPricingCSV(ctx context.Context, upload PricingUpload) (*domain.PricingResult, error) {
	const op = "UploadPricingCSV"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", upload.FileName)
	if err != nil {
		return nil, &CreateError{Op: op, Message: err.Error(), Err: fmt.Errorf("%w: create form file: %v", ErrInternal, err)}
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, &CreateError{Op: op, Message: err.Error(), Err: fmt.Errorf("%w: write form file: %v", ErrInternal, err)}
	}
	if err := mw.Close(); err != nil {
		return nil, &CreateError{Op: op, Message: err.Error(), Err: fmt.Errorf("%w: close multipart: %v", ErrInternal, err)}
	}

	query := url.Values{
		"lab":         []string{upload.LabID.String()},
		"partnerType": []string{upload.PartnerType},
	}

	body, cerr := c.call(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/admin/pricing/" + url.PathEscape(string(upload.Type)),
		query:       query,
		body:        &buf,
		contentType: mw.FormDataContentType(),
	})
	if cerr != nil {
		return nil, cerr.create(op)
	}

	if _, cerr := checkEnvelope(body, http.StatusOK); cerr != nil {
		c.log.Warn("%s: backend rejected pricing sheet: %s", op, cerr.message)
		return nil, cerr.create(op)
	}

	var result domain.PricingResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &CreateError{Op: op, Status: http.StatusOK, Message: err.Error(), Err: fmt.Errorf("%w: decode: %v", ErrInvalidResponse, err)}
	}

	c.log.Info("%s: %s sheet accepted for lab=%s partnerType=%s, finalCount=%d",
		op, upload.Type, upload.LabID, upload.PartnerType, result.FinalCount)
	return &result, nil
}
