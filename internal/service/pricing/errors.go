package pricing

import "errors"

// ErrUploadFailed backend не принял прайс-лист
var ErrUploadFailed = errors.New("pricing: upload failed")
