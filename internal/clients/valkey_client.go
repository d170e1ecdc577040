package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient caches finished comparison results so repeated comparisons
// of the same product set skip re-analysis.
type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

const (
	comparisonKeyPrefix = "comparison:"
	comparisonCacheTTL  = 3600 // seconds
)

func valkeyOptions() valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		client, err := valkey.NewClient(valkeyOptions())
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func GetValkeyClient() *ValkeyClient {
	if valkeyInstance == nil {
		panic("[ValkeyClient] Error: Valkey client is not initialized")
	}
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// ComparisonCacheKey is order-sensitive: product order changes the result
// ordering, so it must change the key too.
func ComparisonCacheKey(products []string) string {
	lowered := make([]string, 0, len(products))
	for _, p := range products {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(p)))
	}
	return comparisonKeyPrefix + strings.Join(lowered, "|")
}

// CacheComparison stores a serialized result under key with a 1h TTL.
func (vc *ValkeyClient) CacheComparison(ctx context.Context, key string, payload []byte) error {
	cmd := vc.Client.B().Set().Key(key).Value(string(payload)).ExSeconds(comparisonCacheTTL).Build()
	res := vc.doWithRetry(ctx, cmd)
	if err := res.Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to cache comparison: %w", err)
	}
	return nil
}

// GetCachedComparison returns the cached payload and whether it was found.
func (vc *ValkeyClient) GetCachedComparison(ctx context.Context, key string) ([]byte, bool) {
	res := vc.doWithRetry(ctx, vc.Client.B().Get().Key(key).Build())
	if err := res.Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return nil, false
	}

	payload, err := res.AsBytes()
	if err != nil || len(payload) == 0 {
		return nil, false
	}
	return payload, true
}

func (vc *ValkeyClient) doWithRetry(ctx context.Context, cmd valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < MAX_RETRIES; i++ {
		result = vc.Client.Do(ctx, cmd)
		if result.Error() == nil {
			break
		}

		slog.Warn("[ValkeyClient] Command failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(INITIAL_BACKOFF)
	}
	return result
}

func (vc *ValkeyClient) recreateClient() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[ValkeyClient] Recreate failed and was recovered from panic",
				slog.Any("panic", r))
		}
	}()

	vc.mu.Lock()
	defer vc.mu.Unlock()
	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := valkey.NewClient(valkeyOptions())
	if err != nil {
		panic(fmt.Errorf("[ValkeyClient] failed to recreate Valkey client: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error()))
	}

	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
	vc.Client = client
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
