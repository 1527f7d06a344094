package orderserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/Apurer/order-entry/internal/domains/orders/domain"
	orderports "github.com/Apurer/order-entry/internal/domains/orders/ports"
	apierrors "github.com/Apurer/order-entry/internal/shared/errors"
)

var responder = apierrors.NewResponder("", mapOrderError)

// mapOrderError turns placement failures into order-specific problems.
func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	var verr *orderdomain.ValidationError
	if errors.As(err, &verr) {
		template := apierrors.ErrDuplicateSku
		if verr.Kind == orderdomain.ViolationOutOfStock {
			template = apierrors.ErrOutOfStock
		}
		return apierrors.NewOrderRejectedProblem(template, verr.Error(), verr.SKU), true
	}
	if errors.Is(err, orderports.ErrNotFound) {
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func respondOrderError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	responder.BadRequest(c, err.Error())
}
