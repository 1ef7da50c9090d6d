package operator

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rowboat-dev/rowboat/pkg/config"
	toolv1 "github.com/rowboat-dev/rowboat/proto"
)

// ToolClient is the gRPC bridge to the tool service hosting vendor API
// calls. A client-side token bucket smooths request bursts; vendor-side
// rate limits still surface as Invoke errors on exhaustion.
type ToolClient struct {
	conn    *grpc.ClientConn
	client  toolv1.ToolServiceClient
	limiter *rate.Limiter
	cfg     *config.OperatorsConfig
}

// NewToolClient creates a tool service client. grpc.NewClient dials
// lazily; the first Invoke establishes the connection.
func NewToolClient(cfg *config.OperatorsConfig) (*ToolClient, error) {
	conn, err := grpc.NewClient(cfg.ToolServiceAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tool service at %s: %w", cfg.ToolServiceAddr, err)
	}
	return &ToolClient{
		conn:    conn,
		client:  toolv1.NewToolServiceClient(conn),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		cfg:     cfg,
	}, nil
}

// Close releases the gRPC connection.
func (c *ToolClient) Close() error {
	return c.conn.Close()
}

// Invoke calls one operator on the tool service. in is JSON-marshaled,
// the response JSON is decoded into out. The call is bounded by the
// configured invoke timeout on top of the caller's context.
func (c *ToolClient) Invoke(ctx context.Context, operator string, in any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	inputJSON, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s input: %w", operator, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.InvokeTimeout)
	defer cancel()

	resp, err := c.client.Invoke(callCtx, &toolv1.InvokeRequest{
		Operator:  operator,
		InputJson: string(inputJSON),
		EventId:   EventIDFromContext(ctx),
	})
	if err != nil {
		return fmt.Errorf("%s invoke failed: %w", operator, err)
	}

	if err := json.Unmarshal([]byte(resp.OutputJson), out); err != nil {
		return fmt.Errorf("failed to decode %s output: %w", operator, err)
	}
	return nil
}

type eventIDKey struct{}

// WithEventID attaches the originating fill event ID to the context so
// tool service traces can be correlated with queue events.
func WithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, eventIDKey{}, eventID)
}

// EventIDFromContext returns the attached event ID, or empty.
func EventIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(eventIDKey{}).(string); ok {
		return v
	}
	return ""
}
