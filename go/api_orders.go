package orderserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/order-entry/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/order-entry/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport to order placement.
type OrdersAPI struct {
	workflows orderports.WorkflowOrchestrator
}

// NewOrdersAPI creates an OrdersAPI that places orders through the given orchestrator.
func NewOrdersAPI(workflows orderports.WorkflowOrchestrator) OrdersAPI {
	return OrdersAPI{workflows: workflows}
}

// Post /v1/orders
// Place an order
func (api *OrdersAPI) PlaceOrder(c *gin.Context) {
	var payload orderhttpmapper.PlaceOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	summary, err := api.workflows.PlaceOrder(c.Request.Context(), orderhttpmapper.ToDomainOrder(payload))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainSummary(summary))
}

// Get /healthz
func (api *OrdersAPI) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
