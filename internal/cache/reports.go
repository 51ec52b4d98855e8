package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/AtelierGestione/atelier-manager/internal/config"
	"github.com/AtelierGestione/atelier-manager/internal/domain/report"
)

// I riepiloghi mensili sono le letture più pesanti e cambiano poco:
// si tengono in Redis per qualche minuto. Redis giù = cache spenta,
// mai un errore verso l'API.

const reportTTL = 5 * time.Minute

type ReportCache struct {
	rdb *redis.Client
}

func NewReportCache(cfg *config.Config) *ReportCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &ReportCache{rdb: rdb}
}

func monthReportKey(year, month int) string {
	return fmt.Sprintf("report:monthly:%s", report.MonthKey(year, month))
}

func (c *ReportCache) GetMonthly(
	ctx context.Context,
	year int,
	month int,
) (*report.Summary, bool) {

	raw, err := c.rdb.Get(ctx, monthReportKey(year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("report cache read failed")
		}
		return nil, false
	}

	var s report.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *ReportCache) SetMonthly(
	ctx context.Context,
	year int,
	month int,
	s *report.Summary,
) {

	raw, err := json.Marshal(s)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, monthReportKey(year, month), raw, reportTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("report cache write failed")
	}
}

// InvalidateAll butta via tutti i riepiloghi mensili. Una mutazione
// sugli appuntamenti può toccare più mesi (serie materializzate,
// spostamenti di data, potature): si svuota tutto invece di inseguire
// le chiavi interessate.
func (c *ReportCache) InvalidateAll(ctx context.Context) {
	keys, err := c.rdb.Keys(ctx, "report:monthly:*").Result()
	if err != nil {
		log.Warn().Err(err).Msg("report cache invalidation failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("report cache invalidation failed")
	}
}
