package impl

import (
	"rxconsole/internal/domain/entity"
	"rxconsole/internal/usecase"
)

// maxUncompressedPages is the largest page count rendered without ellipses.
const maxUncompressedPages = 7

// PageButtons builds the pagination bar: every page when there are at most seven,
// otherwise the first page, the last page, the current page with its neighbours,
// and an ellipsis for each gap.
func PageButtons(current, total int) []usecase.PageButton {
	if total <= 0 {
		return []usecase.PageButton{}
	}
	current = min(max(current, 1), total)

	page := func(p int) usecase.PageButton {
		return usecase.PageButton{Page: p, Current: p == current}
	}

	if total <= maxUncompressedPages {
		buttons := make([]usecase.PageButton, 0, total)
		for p := 1; p <= total; p++ {
			buttons = append(buttons, page(p))
		}

		return buttons
	}

	buttons := []usecase.PageButton{page(1)}
	if current-1 > 2 {
		buttons = append(buttons, usecase.PageButton{Ellipsis: true})
	}
	for p := max(2, current-1); p <= min(total-1, current+1); p++ {
		buttons = append(buttons, page(p))
	}
	if current+1 < total-1 {
		buttons = append(buttons, usecase.PageButton{Ellipsis: true})
	}

	return append(buttons, page(total))
}

func pageInfo[T any](w entity.PageWindow[T]) usecase.PageInfo {
	return usecase.PageInfo{
		Page:       w.Page,
		Limit:      w.Limit,
		Total:      w.Total,
		TotalPages: w.TotalPages,
	}
}
