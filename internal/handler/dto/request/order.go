package request

import "storefront/internal/usecase/queries"

type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListOrdersQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=0"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (q *ListOrdersQuery) ToFilter() queries.OrderFilter {
	return queries.OrderFilter{
		Status: q.Status,
		Page: queries.Page{
			Limit:  queries.ValidateLimit(q.Limit),
			Offset: queries.ValidateOffset(q.Offset),
		},
	}
}
