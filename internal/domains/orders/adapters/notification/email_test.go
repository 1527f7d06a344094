package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/order-entry/internal/clients/http/mailer"
)

func TestEmailNotifier_SendsThroughGateway(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/customers/7/order-confirmations", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := mailer.NewClient(srv.URL, srv.Client())
	require.NoError(t, err)

	err = NewEmailNotifier(client).SendOrderConfirmationEmail(context.Background(), 7, "ord-7")
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestEmailNotifier_NotConfigured(t *testing.T) {
	err := NewEmailNotifier(nil).SendOrderConfirmationEmail(context.Background(), 1, "x")
	require.Error(t, err)
}
