// Package controllers translates HTTP requests into service calls and
// service results into the standard response envelope.
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"
)

// parseIDParam reads a positive int64 path parameter, writing a 400
// response and returning false when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseQueryID reads an optional int64 query parameter, returning zero when
// it is absent or malformed.
func parseQueryID(ctx *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: data, Timestamp: time.Now()})
}

func respondCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: data, Timestamp: time.Now()})
}

func respondPaginated(ctx *gin.Context, items interface{}, total int64, page, size int) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}
