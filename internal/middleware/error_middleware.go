package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// HandleAPIError translates service-layer errors into the standard error
// envelope. Controllers call this for every non-nil service error.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrProjectNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrProgramNotFound,
		apperrors.ErrRecruitmentNotFound,
		apperrors.ErrArticleNotFound,
		apperrors.ErrPostNotFound,
		apperrors.ErrReporterNotFound,
		apperrors.ErrCommentNotFound,
		apperrors.ErrSettingNotFound,
		apperrors.ErrInquiryNotFound,
		apperrors.ErrApplicationNotFound,
		apperrors.ErrPageImageNotFound):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
		detail = detail.WithDetails(err.Error())
		c.JSON(404, dto.APIResponse{Error: detail})
		return
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
		return
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled"),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked"),
		})
		return
	case errors.Is(err, apperrors.ErrUnknownProvider):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnknownProvider, "Unknown OAuth provider"),
		})
		return
	case errors.Is(err, apperrors.ErrProviderDenied):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "OAuth provider rejected the request"),
		})
		return
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"),
		})
		return
	case errors.Is(err, apperrors.ErrProgramFull):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Program has reached its participant limit"),
		})
		return
	case errors.Is(err, apperrors.ErrProgramClosed):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Program is not accepting applications"),
		})
		return
	case errors.Is(err, apperrors.ErrImageSlotFull):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Image slot is full"),
		})
		return
	case errors.Is(err, apperrors.ErrReporterAlreadyApproved):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Article is already approved"),
		})
		return
	case errors.Is(err, apperrors.ErrReporterNotApproved):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Article is not approved"),
		})
		return
	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrResourceAlreadyExists):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Conflict")
		detail = detail.WithDetails(err.Error())
		c.JSON(409, dto.APIResponse{Error: detail})
		return
	case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFileNotAllowed, "File type is not allowed"),
		})
		return
	case errors.Is(err, apperrors.ErrFileTooLarge):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeFileTooLarge, "File exceeds the maximum allowed size"),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidImage):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is not a valid image"),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		detail = detail.WithDetails(err.Error())
		c.JSON(400, dto.APIResponse{Error: detail})
		return
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}
