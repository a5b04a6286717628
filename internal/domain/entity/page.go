package entity

// PageWindow is one fetched page of a paginated remote list.
type PageWindow[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPageWindow builds a window whose TotalPages is always derived from total and limit.
// Items beyond limit are dropped.
func NewPageWindow[T any](items []T, page, limit, total int) PageWindow[T] {
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return PageWindow[T]{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: TotalPages(total, limit),
	}
}

// TotalPages returns ceil(total/limit), or 0 when limit is not positive.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	return (total + limit - 1) / limit
}

// Without returns a copy of the window with the record removed from Items and Total decremented.
func Without[T Record](w PageWindow[T], id string) (PageWindow[T], bool) {
	items := make([]T, 0, len(w.Items))
	removed := false
	for _, item := range w.Items {
		if !removed && item.GetID() == id {
			removed = true

			continue
		}
		items = append(items, item)
	}

	if !removed {
		return w, false
	}

	return NewPageWindow(items, w.Page, w.Limit, w.Total-1), true
}
