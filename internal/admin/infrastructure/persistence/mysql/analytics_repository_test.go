package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowStartIncludesBoundaryDay(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	// 7 天窗口覆盖 03-09 到 03-15 共 7 个完整日
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), windowStart(now, 7))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), windowStart(now, 1))
	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), windowStart(now, 30))
}
