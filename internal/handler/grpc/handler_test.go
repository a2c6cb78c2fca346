package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/MKhiriev/bpl-web-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubAppInfoService struct {
	readyErr error
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string { return "test" }
func (s *stubAppInfoService) Ready(_ context.Context) error          { return s.readyErr }

// dial serves h over an in-memory listener and returns a health client.
func dial(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	h.Register(server)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		readyErr   error
		wantStatus healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "overall serving", wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "named serving", service: ServiceName, wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", readyErr: errors.New("ping failed"), wantStatus: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{AppInfoService: &stubAppInfoService{readyErr: tt.readyErr}}, logger.Nop())
			client := dial(t, h)

			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.GetStatus())
		})
	}
}

func TestCheck_UnknownService(t *testing.T) {
	h := NewHandler(&service.Services{AppInfoService: &stubAppInfoService{}}, logger.Nop())

	_, err := h.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "payments"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}
