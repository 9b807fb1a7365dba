package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// ListPhlebotomists GET /phlebos?labId=
// Пустой labID - все флеботомисты
func (c *Client) ListPhlebotomists(ctx context.Context, labID domain.ID) ([]domain.Phlebotomist, error) {
	var query url.Values
	if labID != "" {
		query = url.Values{"labId": []string{labID.String()}}
	}
	return fetchList[domain.Phlebotomist](ctx, c, "ListPhlebotomists", "/phlebos", query, "phlebos", "phlebotomists")
}

// CreatePhlebotomist POST /phlebos
func (c *Client) CreatePhlebotomist(ctx context.Context, payload map[string]interface{}) (*Created[domain.Phlebotomist], error) {
	return create[domain.Phlebotomist](ctx, c, "CreatePhlebotomist", "/phlebos", payload, "phlebo")
}

// TogglePhlebotomist PATCH /phlebos/:id/toggle
func (c *Client) TogglePhlebotomist(ctx context.Context, id domain.ID) (*Acted[domain.Phlebotomist], error) {
	path := fmt.Sprintf("/phlebos/%s/toggle", url.PathEscape(id.String()))
	return act[domain.Phlebotomist](ctx, c, "TogglePhlebotomist", http.MethodPatch, path, "phlebo")
}

// DeletePhlebotomist DELETE /phlebos/:id
func (c *Client) DeletePhlebotomist(ctx context.Context, id domain.ID) error {
	path := fmt.Sprintf("/phlebos/%s", url.PathEscape(id.String()))
	_, err := act[domain.Phlebotomist](ctx, c, "DeletePhlebotomist", http.MethodDelete, path, "")
	return err
}
