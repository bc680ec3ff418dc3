package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adminboard/account-service/internal/application/report"
	"github.com/adminboard/account-service/internal/logger"
)

const reportKey = "report:dashboard"

// ReportCache keeps the assembled report document in Redis for a short TTL.
// It is strictly best-effort: a miss, a deserialisation failure, or a Redis
// outage just means the report gets recomputed.
type ReportCache struct {
	client *Client
	ttl    time.Duration
}

func NewReportCache(client *Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ReportCache{client: client, ttl: ttl}
}

func (c *ReportCache) Get(ctx context.Context) (*report.Document, bool) {
	if c.client == nil {
		return nil, false
	}
	data, ok := c.client.GetString(ctx, reportKey)
	if !ok {
		return nil, false
	}
	var doc report.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

func (c *ReportCache) Set(ctx context.Context, doc report.Document) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("report cache marshal failed")
		return
	}
	if err := c.client.SetString(ctx, reportKey, string(data), c.ttl); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("report cache write failed")
	}
}
