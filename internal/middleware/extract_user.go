package middleware

import (
	"net/http"

	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ContextValidatedUserID holds the caller id once ExtractUserID has checked it.
const ContextValidatedUserID = "user_id_validated"

// ExtractUserID re-publishes user_id as user_id_validated once it is known
// to be a non-empty string. Idempotency keys are built from it, so it must
// run before Idempotency.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get(ContextUserID)
		if !exists {
			response.Abort(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated")
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Abort(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format")
			return
		}

		ctx.Set(ContextValidatedUserID, userIDStr)
		ctx.Next()
	}
}
