package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Name   string
	Email  string
	Mobile string
	Shop   string
	Status string
}

func (r row) Key() string            { return r.ID }
func (r row) SearchFields() []string { return []string{r.Name, r.Email, r.Mobile, r.Shop} }
func (r row) StatusValue() string    { return r.Status }

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		status := "PENDING"
		if i%3 == 0 {
			status = "ACCEPTED"
		}
		out[i] = row{
			ID:     fmt.Sprint(i + 1),
			Name:   fmt.Sprintf("Partner %d", i+1),
			Email:  fmt.Sprintf("p%d@example.com", i+1),
			Mobile: fmt.Sprintf("98765%05d", i+1),
			Status: status,
		}
	}
	return out
}

func loaded(t *testing.T, items []row, pageSize int) *List[row] {
	t.Helper()
	l := NewList[row](pageSize)
	require.NoError(t, l.Load(context.Background(), func(context.Context) ([]row, error) { return items, nil }))
	return l
}

func TestFilter_CaseInsensitiveAcrossFields(t *testing.T) {
	items := []row{
		{ID: "1", Name: "Asha Kumar", Email: "asha@clinic.in", Mobile: "9000000001", Shop: "Asha Chemists"},
		{ID: "2", Name: "Vikram", Email: "VIKRAM@GYM.IN", Mobile: "9000000002", Shop: "Iron Gym"},
		{ID: "3", Name: "Meera", Email: "meera@lab.in", Mobile: "9111111111", Shop: "Wellness"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "asha", want: []string{"1"}},
		{query: "gym.in", want: []string{"2"}},
		{query: "IRON", want: []string{"2"}},
		{query: "9000", want: []string{"1", "2"}},
		{query: "  ", want: []string{"1", "2", "3"}},
		{query: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(items, tt.query, StatusAll)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
				joined := strings.ToLower(strings.Join(r.SearchFields(), "|"))
				assert.Contains(t, joined, strings.ToLower(strings.TrimSpace(tt.query)))
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_StatusTab(t *testing.T) {
	items := rows(10)

	pending := Filter(items, "", "PENDING")
	for _, r := range pending {
		assert.Equal(t, "PENDING", r.Status)
	}

	expected := 0
	for _, r := range items {
		if r.Status == "PENDING" {
			expected++
		}
	}
	assert.Len(t, pending, expected)
	assert.Len(t, Filter(items, "", "pending"), expected, "tab match is case-insensitive")
	assert.Len(t, Filter(items, "", ""), len(items))
}

func TestPaginate_Invariants(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16, 17, 40} {
		for _, size := range []int{1, 3, 8} {
			items := rows(n)
			_, _, totalPages := Paginate(items, 1, size)

			wantPages := (n + size - 1) / size
			if wantPages < 1 {
				wantPages = 1
			}
			require.Equal(t, wantPages, totalPages, "n=%d size=%d", n, size)

			var all []row
			for p := 1; p <= totalPages; p++ {
				pageItems, page, _ := Paginate(items, p, size)
				assert.Equal(t, p, page)
				assert.LessOrEqual(t, len(pageItems), size)
				all = append(all, pageItems...)
			}
			if n == 0 {
				assert.Empty(t, all)
			} else {
				assert.Equal(t, items, all, "pages concatenate to the filtered list")
			}
		}
	}
}

func TestPaginate_ClampsPage(t *testing.T) {
	items := rows(10)

	got, page, total := Paginate(items, 99, 8)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)

	_, page, _ = Paginate(items, -3, 8)
	assert.Equal(t, 1, page)
}

func TestList_LoadTransitions(t *testing.T) {
	ctx := context.Background()
	l := NewList[row](8)
	assert.Equal(t, StateIdle, l.State())

	var during State
	err := l.Load(ctx, func(context.Context) ([]row, error) {
		during = l.State()
		return rows(12), nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateLoading, during)

	l.SetPage(2)
	view := l.View()
	assert.Equal(t, StateReady, view.State)
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Items, 4)

	boom := errors.New("network down")
	err = l.Load(ctx, func(context.Context) ([]row, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	view = l.View()
	assert.Equal(t, StateError, view.State)
	assert.NotEmpty(t, view.Error)
	assert.Empty(t, view.Items, "list is emptied on error")
	assert.Equal(t, 0, view.Total)

	require.NoError(t, l.Load(ctx, func(context.Context) ([]row, error) { return rows(3), nil }))
	view = l.View()
	assert.Equal(t, StateReady, view.State)
	assert.Empty(t, view.Error, "error cleared on reload")
	assert.Equal(t, 1, view.Page, "page reset after load")
}

func TestList_StaleLoadDiscarded(t *testing.T) {
	ctx := context.Background()
	l := NewList[row](8)

	err := l.Load(ctx, func(context.Context) ([]row, error) {
		require.NoError(t, l.Load(ctx, func(context.Context) ([]row, error) { return rows(2), nil }))
		return rows(5), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, l.View().Total, "older load finishing last does not overwrite newer result")
}

func TestList_QueryResetsPage(t *testing.T) {
	l := loaded(t, rows(20), 8)
	l.SetPage(3)
	l.SetQuery("partner 1")

	view := l.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 11, view.Filtered)
}

func TestList_ViewForLeavesSharedStateUntouched(t *testing.T) {
	l := loaded(t, rows(20), 8)
	l.SetQuery("partner 2")

	view := l.ViewFor("partner 1", " accepted ", 0)
	assert.Equal(t, "partner 1", view.Query)
	assert.Equal(t, "ACCEPTED", view.Status)
	assert.Equal(t, 1, view.Page)
	for _, item := range view.Items {
		assert.Equal(t, "ACCEPTED", item.Status)
		assert.Contains(t, strings.ToLower(item.Name), "partner 1")
	}

	stored := l.View()
	assert.Equal(t, "partner 2", stored.Query)
	assert.Equal(t, StatusAll, stored.Status)
}

func TestList_ViewForConcurrentQueries(t *testing.T) {
	items := make([]row, 0, 40)
	for i := 0; i < 20; i++ {
		items = append(items,
			row{ID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("ALPHA %d", i), Status: "PENDING"},
			row{ID: fmt.Sprintf("b%d", i), Name: fmt.Sprintf("BETA %d", i), Status: "PENDING"},
		)
	}
	l := loaded(t, items, 8)

	var wg sync.WaitGroup
	mismatches := make(chan string, 8*200)
	for g := 0; g < 8; g++ {
		query := "alpha"
		if g%2 == 1 {
			query = "beta"
		}
		wg.Add(1)
		go func(query string) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				view := l.ViewFor(query, "", 1+i%3)
				if view.Query != query || view.Filtered != 20 {
					mismatches <- fmt.Sprintf("query=%s got query=%s filtered=%d", query, view.Query, view.Filtered)
					continue
				}
				for _, item := range view.Items {
					if !strings.Contains(strings.ToLower(item.Name), query) {
						mismatches <- fmt.Sprintf("query=%s got item %s", query, item.Name)
					}
				}
			}
		}(query)
	}
	wg.Wait()
	close(mismatches)

	for m := range mismatches {
		t.Error(m)
	}
}

func TestList_Prepend(t *testing.T) {
	l := NewList[row](8)
	assert.ErrorIs(t, l.Prepend(row{ID: "x"}), ErrNotReady)

	l = loaded(t, rows(3), 8)
	before := l.Items()

	created := row{ID: "new", Name: "Fresh Partner", Status: "PENDING"}
	require.NoError(t, l.Prepend(created))

	after := l.Items()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created, after[0])
	assert.Equal(t, before, after[1:])
}

func TestList_UpdateRemove(t *testing.T) {
	l := loaded(t, rows(3), 8)

	require.NoError(t, l.Update("2", func(r row) row {
		r.Status = "REJECTED"
		return r
	}))
	got, ok := l.Get("2")
	require.True(t, ok)
	assert.Equal(t, "REJECTED", got.Status)

	assert.ErrorIs(t, l.Update("404", func(r row) row { return r }), ErrNotFound)

	require.NoError(t, l.Remove("1"))
	_, ok = l.Get("1")
	assert.False(t, ok)
	assert.Len(t, l.Items(), 2)
	assert.ErrorIs(t, l.Remove("1"), ErrNotFound)
}
