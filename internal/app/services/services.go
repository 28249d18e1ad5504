// Package services holds the business logic between the HTTP controllers
// and the repositories. Services validate input, enforce the domain rules
// (program capacity, reporter moderation, image slot caps) and translate
// repository errors into the shared apperrors sentinels.
package services

import "github.com/eohue/ibookee-web-sub001/internal/pkg/helpers"

// calculateOffsetLimit converts 1-based list parameters to an offset/limit
// pair. Shared by every listing service.
func calculateOffsetLimit(page, size int) (uint64, int) {
	return helpers.CalculateOffsetLimit(page, size)
}
