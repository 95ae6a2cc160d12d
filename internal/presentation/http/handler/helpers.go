package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/request"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
)

// bindJSON decodes and validates the body, writing the error response itself
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.FromBinding(err))
		return false
	}
	return true
}

// bindSearch reads search filters from the JSON body, or from the query
// string when there is no body
func bindSearch(c *gin.Context) (*request.SearchRequest, bool) {
	var req request.SearchRequest
	var err error
	if c.Request.ContentLength > 0 {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		response.Error(c, apperror.FromBinding(err))
		return nil, false
	}
	return &req, true
}
