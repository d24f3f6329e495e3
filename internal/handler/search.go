package handler

import (
	"net/http"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct{ svc service.SearchService }

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Find GET /search/:collection/:term — the only public endpoint.
func (h *SearchHandler) Find(c *gin.Context) {
	resp, err := h.svc.Search(c.Request.Context(), c.Param("collection"), c.Param("term"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
