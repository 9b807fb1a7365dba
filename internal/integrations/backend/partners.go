package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// ListPartnerRequests GET /partner-admin/requests
func (c *Client) ListPartnerRequests(ctx context.Context) ([]domain.PartnerRequest, error) {
	return fetchList[domain.PartnerRequest](ctx, c, "ListPartnerRequests", "/partner-admin/requests", nil, "requests", "partners")
}

// ApprovePartnerRequest PATCH /partner-admin/requests/:id/approve
// Каждый вызов - отдельный PATCH, идемпотентность обеспечивает backend
func (c *Client) ApprovePartnerRequest(ctx context.Context, id domain.ID) (*Acted[domain.PartnerRequest], error) {
	return c.partnerAction(ctx, "ApprovePartnerRequest", id, domain.ActionApprove)
}

// RejectPartnerRequest PATCH /partner-admin/requests/:id/reject
func (c *Client) RejectPartnerRequest(ctx context.Context, id domain.ID) (*Acted[domain.PartnerRequest], error) {
	return c.partnerAction(ctx, "RejectPartnerRequest", id, domain.ActionReject)
}

func (c *Client) partnerAction(ctx context.Context, op string, id domain.ID, action domain.PartnerAction) (*Acted[domain.PartnerRequest], error) {
	path := fmt.Sprintf("/partner-admin/requests/%s/%s", url.PathEscape(id.String()), action)
	return act[domain.PartnerRequest](ctx, c, op, http.MethodPatch, path, "request")
}

// RegisterPartner POST /partners/register
func (c *Client) RegisterPartner(ctx context.Context, payload map[string]interface{}) (*Created[domain.PartnerRequest], error) {
	return create[domain.PartnerRequest](ctx, c, "RegisterPartner", "/partners/register", payload, "partner")
}
