package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// ListLabs GET /labs
func (c *Client) ListLabs(ctx context.Context) ([]domain.Lab, error) {
	return fetchList[domain.Lab](ctx, c, "ListLabs", "/labs", nil, "labs")
}

// CreateLab POST /labs
func (c *Client) CreateLab(ctx context.Context, payload map[string]interface{}) (*Created[domain.Lab], error) {
	return create[domain.Lab](ctx, c, "CreateLab", "/labs", payload, "lab")
}

// CreatePackage POST /labs/:id/packages
func (c *Client) CreatePackage(ctx context.Context, labID domain.ID, payload map[string]interface{}) (*Created[domain.Package], error) {
	path := fmt.Sprintf("/labs/%s/packages", url.PathEscape(labID.String()))
	return create[domain.Package](ctx, c, "CreatePackage", path, payload, "package")
}

// CreateTest POST /labs/:id/tests
func (c *Client) CreateTest(ctx context.Context, labID domain.ID, payload map[string]interface{}) (*Created[domain.Test], error) {
	path := fmt.Sprintf("/labs/%s/tests", url.PathEscape(labID.String()))
	return create[domain.Test](ctx, c, "CreateTest", path, payload, "test")
}
