// Package redis provides helpers for connecting to a Redis server.
//
// It wraps the go-redis client with a retrying Connect driven by an
// env-taggable Config, plus a Healthcheck probe for liveness endpoints.
//
//	cfg := redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  5 * time.Second,
//	    ConnectTimeout: 30 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // probably terminate the application
//	}
//	defer client.Close()
//
// Sentinel errors wrap the underlying go-redis errors with errors.Join, so
// they remain comparable with errors.Is.
package redis
