package backend

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// ListLabAdmins GET /lab-admins
func (c *Client) ListLabAdmins(ctx context.Context) ([]domain.LabAdmin, error) {
	return fetchList[domain.LabAdmin](ctx, c, "ListLabAdmins", "/lab-admins", nil, "admins", "labAdmins")
}

// RegisterLabAdmin POST /lab-admins/register
func (c *Client) RegisterLabAdmin(ctx context.Context, payload map[string]interface{}) (*Created[domain.LabAdmin], error) {
	return create[domain.LabAdmin](ctx, c, "RegisterLabAdmin", "/lab-admins/register", payload, "admin")
}
