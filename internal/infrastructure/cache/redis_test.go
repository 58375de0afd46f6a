package cache

import (
	"io"
	"testing"

	"medical-office-api/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mr := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: mr.Host(), Port: mr.Port()}
	client, err := NewRedisClient(cfg, log)
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = NewRedisClient(cfg, log)
	assert.Error(t, err)
}
