package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New - starts a throwaway Redis container; the test is skipped when Docker is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not construct docker pool: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge redis container: %v", err)
		}
	})

	// never returns error
	_ = resource.Expire(expireDuration)

	pool.MaxWait = maxWaitDuration

	redisHost := resource.GetHostPort(redisPort)

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{
			Addr: redisHost,
		})
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
	}
}
