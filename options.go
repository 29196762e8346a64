package lectern

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string

	chunkSize       int
	keywordCount    int
	defaultUploader string

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisCluster configures the client to connect to a Redis cluster.
func WithRedisCluster(addrs []string, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.password = password
	})
}

// WithUsername sets the database username (ACL-enabled deployments).
func WithUsername(username string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
	})
}

// WithChunkSize sets the blob chunk size in bytes. Defaults to 256 KiB.
func WithChunkSize(bytes int) Option {
	return optionFunc(func(c *clientConfig) {
		c.chunkSize = bytes
	})
}

// WithKeywordCount sets how many tags are derived per ingested resource.
// Defaults to 5.
func WithKeywordCount(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.keywordCount = n
	})
}

// WithDefaultUploader sets the uploader recorded when IngestInput leaves
// UploaderID empty.
func WithDefaultUploader(id string) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultUploader = id
	})
}

// WithLogger sets the logger for client operations. Defaults to a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithMetrics registers client operation metrics with the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
