package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

type ValkeyConfig struct {
	Address  string
	Password string
	TLS      bool
}

type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(ctx context.Context, cfg ValkeyConfig) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	vc := &ValkeyClient{Client: client}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := vc.Ping(pingCtx); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey", slog.String("address", cfg.Address))
	return vc, nil
}

func (vc *ValkeyClient) Ping(ctx context.Context) error {
	return vc.Client.Do(ctx, vc.Client.B().Ping().Build()).Error()
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

// Incr increments every key by one in a single round trip.
func (vc *ValkeyClient) Incr(ctx context.Context, keys ...string) error {
	completed := make([]valkey.Completed, 0, len(keys))
	for _, key := range keys {
		completed = append(completed, vc.Client.B().Incr().Key(key).Build())
	}

	for _, res := range vc.Client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			return err
		}
	}
	return nil
}

// GetInts reads integer counters. Keys that do not exist read as zero.
func (vc *ValkeyClient) GetInts(ctx context.Context, keys ...string) ([]int64, error) {
	completed := make([]valkey.Completed, 0, len(keys))
	for _, key := range keys {
		completed = append(completed, vc.Client.B().Get().Key(key).Build())
	}

	values := make([]int64, len(keys))
	for i, res := range vc.Client.DoMulti(ctx, completed...) {
		n, err := res.AsInt64()
		if valkey.IsValkeyNil(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", keys[i], err)
		}
		values[i] = n
	}
	return values, nil
}
