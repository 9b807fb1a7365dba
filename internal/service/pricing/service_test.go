package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/toast"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

type fakeClient struct {
	calls  []backend.PricingUpload
	result *domain.PricingResult
	err    error
}

func (f *fakeClient) UploadPricingCSV(_ context.Context, upload backend.PricingUpload) (*domain.PricingResult, error) {
	f.calls = append(f.calls, upload)
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	return &r, nil
}

type fakeArchive struct {
	prefix string
	name   string
	err    error
}

func (f *fakeArchive) Put(_ context.Context, prefix, fileName string, _ []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.prefix, f.name = prefix, fileName
	return prefix + "/key-" + fileName, nil
}

type nopTracker struct{}

func (nopTracker) Track(context.Context, string, string, string, error, string) {}

func validRequest() Request {
	return Request{
		Type:        "tests",
		LabID:       "3",
		PartnerType: "CHEMIST",
		FileName:    "chemist-tests.csv",
		Content:     []byte("testName,mrp,discounted\nCBC,300,250\n"),
	}
}

func TestUpload_NoFileFailsWithoutRequest(t *testing.T) {
	client := &fakeClient{result: &domain.PricingResult{}}
	s := NewService(client, nil, nopTracker{}, logger.NewNop())

	req := validRequest()
	req.FileName = ""
	req.Content = nil

	_, err := s.Upload(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, form.ErrValidation)
	assert.Equal(t, toast.ValidationMessage, toast.Message(err, ""))

	var verr *form.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Select a CSV file", verr.Fields["file"])
	assert.Empty(t, client.calls, "no network request")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
		want   string
	}{
		{name: "wrong extension", mutate: func(r *Request) { r.FileName = "sheet.xlsx" }, field: "file", want: "Only .csv files are supported"},
		{name: "empty file", mutate: func(r *Request) { r.Content = []byte("  \n") }, field: "file", want: "The selected file is empty"},
		{name: "bad type", mutate: func(r *Request) { r.Type = "labs" }, field: "type", want: "Pricing type must be tests or packages"},
		{name: "no lab", mutate: func(r *Request) { r.LabID = "" }, field: "lab", want: "Lab is required"},
		{name: "no partner type", mutate: func(r *Request) { r.PartnerType = " " }, field: "partnerType", want: "Partner type is required"},
	}

	assert.Empty(t, Validate(validRequest()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			errs := Validate(req)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[tt.field])
		})
	}
}

func TestUpload_SuccessArchivesCopy(t *testing.T) {
	client := &fakeClient{result: &domain.PricingResult{FinalCount: 42}}
	archive := &fakeArchive{}
	s := NewService(client, archive, nopTracker{}, logger.NewNop())

	req := validRequest()
	req.Type = "Tests"
	req.FileName = "uploads/chemist-tests.CSV"

	res, err := s.Upload(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 42, res.FinalCount)
	assert.Equal(t, "Pricing uploaded: 42 rows imported", res.Message)
	assert.Equal(t, "tests/key-chemist-tests.CSV", res.ArchiveKey)

	require.Len(t, client.calls, 1)
	assert.Equal(t, domain.PricingTests, client.calls[0].Type)
	assert.Equal(t, "chemist-tests.CSV", client.calls[0].FileName)
	assert.Equal(t, domain.ID("3"), client.calls[0].LabID)
}

func TestUpload_ArchiveFailureDoesNotFailUpload(t *testing.T) {
	client := &fakeClient{result: &domain.PricingResult{FinalCount: 1, Message: "Imported"}}
	s := NewService(client, &fakeArchive{err: errors.New("bucket missing")}, nopTracker{}, logger.NewNop())

	res, err := s.Upload(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Imported", res.Message)
	assert.Empty(t, res.ArchiveKey)
}

func TestUpload_BackendRejection(t *testing.T) {
	apiErr := &backend.CreateError{Op: "UploadPricingCSV", Message: "Column 'mrp' is missing", Err: backend.ErrAPI}
	s := NewService(&fakeClient{err: apiErr}, nil, nopTracker{}, logger.NewNop())

	_, err := s.Upload(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, "Column 'mrp' is missing", toast.Message(err, "Upload failed"))
}

func TestReadHeader(t *testing.T) {
	header, err := readHeader([]byte("\xef\xbb\xbfname, mrp,discounted\nCBC,1,1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "mrp", "discounted"}, header)
}
