package coordserver

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mitchelldurbincs/hexland/internal/coord"
	"github.com/mitchelldurbincs/hexland/internal/testutil"
)

const bufSize = 1024 * 1024

type testEnv struct {
	client *Client
	conn   *grpc.ClientConn
	health *health.Server
}

// setupTestServer creates an in-memory gRPC server for testing
func setupTestServer(t *testing.T, srv CoordServiceServer, logger zerolog.Logger) *testEnv {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	s, h := NewGRPCServer(srv, logger)

	go func() {
		if err := s.Serve(lis); err != nil {
			t.Logf("Server exited with error: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		s.Stop()
		lis.Close()
	})

	return &testEnv{client: NewClient(conn), conn: conn, health: h}
}

func TestIndexAndCoordAt(t *testing.T) {
	env := setupTestServer(t, NewServer(coord.Square8{}, 64), testutil.NopLogger())
	ctx := context.Background()

	idx, err := env.client.Index(ctx, coord.New(0, -1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), idx)

	c, err := env.client.CoordAt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, coord.New(0, -1), c)

	for _, want := range testutil.SampleCoords {
		idx, err := env.client.Index(ctx, want)
		require.NoError(t, err)
		got, err := env.client.CoordAt(ctx, idx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCoordAt_BeyondLimit(t *testing.T) {
	env := setupTestServer(t, NewServer(coord.Square8{}, 64), testutil.NopLogger())

	_, err := env.client.CoordAt(context.Background(), coord.SpiralIndexLimit)
	assert.Equal(t, codes.OutOfRange, status.Code(err))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		sys      coord.CoordSystem
		a, b     coord.Coord
		expected int64
	}{
		{"Square8Manhattan", coord.Square8{}, coord.New(0, 0), coord.New(3, 4), 7},
		{"Hex6", coord.Hex6{}, coord.New(0, 0), coord.New(3, -3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t, NewServer(tt.sys, 64), testutil.NopLogger())
			d, err := env.client.Distance(context.Background(), tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDistance_WrongArity(t *testing.T) {
	env := setupTestServer(t, NewServer(coord.Square8{}, 64), testutil.NopLogger())

	out := new(wrapperspb.Int64Value)
	err := env.conn.Invoke(context.Background(), DistanceMethod, wrapperspb.Bytes(nil), out)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAdjacent(t *testing.T) {
	env := setupTestServer(t, NewServer(coord.Square8{}, 2), testutil.NopLogger())
	ctx := context.Background()

	ns, err := env.client.Adjacent(ctx, coord.Zero())
	require.NoError(t, err)
	assert.Equal(t, coord.Neighbours(coord.Square8{}, coord.Zero()), ns)

	ns, err = env.client.Adjacent(ctx, coord.Zero(), coord.New(10, 10))
	require.NoError(t, err)
	require.Len(t, ns, 16)
	assert.Equal(t, coord.New(10, 9), ns[8])

	_, err = env.client.Adjacent(ctx, coord.Zero(), coord.Zero(), coord.Zero())
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMalformedCoordinate(t *testing.T) {
	env := setupTestServer(t, NewServer(coord.Square8{}, 64), testutil.NopLogger())

	out := new(wrapperspb.UInt64Value)
	err := env.conn.Invoke(context.Background(), IndexMethod, wrapperspb.Bytes([]byte{0x08}), out)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

type panickingServer struct {
	*Server
}

func (panickingServer) Index(context.Context, *wrapperspb.BytesValue) (*wrapperspb.UInt64Value, error) {
	panic("boom")
}

func TestRecoveryInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	env := setupTestServer(t, panickingServer{NewServer(coord.Square8{}, 64)}, logger)

	_, err := env.client.Index(context.Background(), coord.Zero())
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Contains(t, buf.String(), "Recovered from panic")

	// other methods are unaffected
	_, err = env.client.CoordAt(context.Background(), 0)
	assert.NoError(t, err)
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	env := setupTestServer(t, NewServer(coord.Square8{}, 64), logger)

	_, err := env.client.Index(context.Background(), coord.New(2, 0))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"method":"`+IndexMethod+`"`)
	assert.Contains(t, out, `"code":"OK"`)
	assert.Contains(t, out, `"request_id":`)
}

func TestHealth(t *testing.T) {
	env := setupTestServer(t, NewServer(coord.Square8{}, 64), testutil.NopLogger())
	hc := grpc_health_v1.NewHealthClient(env.conn)
	ctx := context.Background()

	resp, err := hc.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	MarkNotServing(env.health)

	resp, err = hc.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
