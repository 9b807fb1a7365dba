package list_resource

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

// ParseParams читает параметры списка из query string
// Отсутствующая страница = 1
func ParseParams(q url.Values) (resources.Params, error) {
	p := resources.Params{
		Query:  strings.TrimSpace(q.Get("q")),
		Status: strings.TrimSpace(q.Get("status")),
		LabID:  strings.TrimSpace(q.Get("labId")),
		Page:   1,
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return resources.Params{}, fmt.Errorf("invalid page %q", raw)
		}
		p.Page = page
	}
	return p, nil
}
