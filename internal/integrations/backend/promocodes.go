package backend

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// ListPromoCodes GET /promocodes
// Ответ бывает голым массивом или {"promos": [...]}
func (c *Client) ListPromoCodes(ctx context.Context) ([]domain.PromoCode, error) {
	return fetchList[domain.PromoCode](ctx, c, "ListPromoCodes", "/promocodes", nil, "promos", "promocodes")
}

// CreatePromoCode POST /promocodes
func (c *Client) CreatePromoCode(ctx context.Context, payload map[string]interface{}) (*Created[domain.PromoCode], error) {
	return create[domain.PromoCode](ctx, c, "CreatePromoCode", "/promocodes", payload, "promo")
}
