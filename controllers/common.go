package controllers

import (
	"net/http"

	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseIDParam reads the :id path segment. On a malformed id it writes the
// 400 envelope itself and reports false.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Geçersiz ID formatı")
		return uuid.Nil, false
	}
	return id, true
}

// boolQuery reads an optional boolean filter. Absent means "no filter";
// any value other than "true" counts as false.
func boolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	value := raw == "true"
	return &value
}
