package request

import "github.com/swarnaabhushan/backoffice-api/internal/application/service"

// SearchRequest is the body of every search endpoint. Fields a resource
// does not filter on are ignored.
type SearchRequest struct {
	Keyword    string `json:"keyword" form:"keyword" binding:"max=100"`
	UserID     string `json:"userId" form:"userId" binding:"omitempty,uuid"`
	BillID     string `json:"billId" form:"billId" binding:"omitempty,uuid"`
	Range      string `json:"range" form:"range"`
	BillStatus string `json:"billStatus" form:"billStatus"`
	Page       int    `json:"page" form:"page" binding:"min=0"`
	Limit      int    `json:"limit" form:"limit" binding:"min=0"`
}

// Users converts the request to a user search
func (r *SearchRequest) Users() *service.SearchUsersInput {
	return &service.SearchUsersInput{Keyword: r.Keyword, Page: r.Page, Limit: r.Limit}
}

// Items converts the request to an item search
func (r *SearchRequest) Items() *service.SearchItemsInput {
	return &service.SearchItemsInput{Keyword: r.Keyword, Page: r.Page, Limit: r.Limit}
}

// Bills converts the request to a bill search
func (r *SearchRequest) Bills() *service.SearchBillsInput {
	return &service.SearchBillsInput{
		Keyword:    r.Keyword,
		UserID:     r.UserID,
		Range:      r.Range,
		BillStatus: r.BillStatus,
		Page:       r.Page,
		Limit:      r.Limit,
	}
}

// Payments converts the request to a payment search
func (r *SearchRequest) Payments() *service.SearchPaymentsInput {
	return &service.SearchPaymentsInput{
		UserID: r.UserID,
		BillID: r.BillID,
		Range:  r.Range,
		Page:   r.Page,
		Limit:  r.Limit,
	}
}
