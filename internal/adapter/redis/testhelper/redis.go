// Package testhelper starts a shared Redis container for adapter tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce    sync.Once
	sharedAddr   string
	redisInitErr error
)

// SetupTestRedis starts a Redis container once per test binary and returns a
// client that is closed via t.Cleanup. Tests share the server, so keys must
// be unique per test.
func SetupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: redis tests need docker; skipped in -short mode")
	}

	redisOnce.Do(func() {
		sharedAddr, redisInitErr = startRedis()
	})
	if redisInitErr != nil {
		t.Fatalf("testhelper: failed to setup test redis: %v", redisInitErr)
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: sharedAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Fatalf("testhelper: redis ping: %v", err)
	}

	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return rdb
}

func startRedis() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}
