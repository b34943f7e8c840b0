package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nlsproduction/nls-api/internal/api/handler/v1/response"
	"github.com/nlsproduction/nls-api/internal/config"
)

type SiteHandler struct {
	conf *config.APIConfig
}

func NewSiteHandler(conf *config.APIConfig) *SiteHandler {
	return &SiteHandler{
		conf: conf,
	}
}

// HandleGetSiteInfo godoc
// @Summary      Get site contact information
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.SiteInfo
// @Router       /api/site [get]
func (h *SiteHandler) HandleGetSiteInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.SiteInfo{
		ContactEmail: h.conf.ContactEmail,
		ContactPhone: h.conf.ContactPhone,
	})
}
