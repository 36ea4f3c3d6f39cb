package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/utils"
)

// respondFault maps a fault kind to its HTTP class. Anything without a kind
// is an unanticipated failure (store unavailable and the like): it is logged
// in full but answered with a generic message.
func respondFault(c *gin.Context, err error) {
	switch faults.KindOf(err) {
	case faults.Validation:
		utils.RespondError(c, http.StatusBadRequest, err.Error())
	case faults.Conflict:
		utils.RespondError(c, http.StatusConflict, err.Error())
	case faults.Decode:
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case faults.Unauthorized:
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		utils.ErrorLogger.Printf("unexpected error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
