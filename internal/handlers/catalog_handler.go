package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agendamento-api/internal/cache"
	"github.com/BruksfildServices01/agendamento-api/internal/httperr"
	"github.com/BruksfildServices01/agendamento-api/internal/httpresp"
	"github.com/BruksfildServices01/agendamento-api/internal/usecase/booking"
)

type CatalogHandler struct {
	listUC  *booking.ListServices
	catalog *cache.Catalog
}

func NewCatalogHandler(
	listUC *booking.ListServices,
	catalog *cache.Catalog,
) *CatalogHandler {
	return &CatalogHandler{
		listUC:  listUC,
		catalog: catalog,
	}
}

// ListServices serve o catálogo. Dado de referência imutável, então o
// cache nunca compromete read-your-writes dos agendamentos.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.catalog.Get(ctx); ok {
		httpresp.List(c, services)
		return
	}

	services, err := h.listUC.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	h.catalog.Set(ctx, services)
	httpresp.List(c, services)
}

// parseID compartilhado pelos handlers que recebem IDs em query/rota.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
