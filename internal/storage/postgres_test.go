package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 時區來自設定，不在連接字串中寫死
func TestPostgresDSNUsesConfiguredTimeZone(t *testing.T) {
	dsn := postgresDSN("localhost", "app", "secret", "werewolf", 5432, "Asia/Tokyo")
	assert.Equal(t,
		"host=localhost user=app password=secret dbname=werewolf port=5432 sslmode=disable TimeZone=Asia/Tokyo",
		dsn)

	dsn = postgresDSN("localhost", "app", "secret", "werewolf", 5432, "UTC")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
