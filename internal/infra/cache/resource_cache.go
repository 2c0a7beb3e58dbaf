package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"booking-engine/internal/domain/resource"
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// resourceRecord is the cached flat form of a resource. Domain entities keep
// their fields unexported, so the cache round-trips through this record and
// reconstructs on read.
type resourceRecord struct {
	ID         uuid.UUID         `json:"id"`
	BusinessID uuid.UUID         `json:"business_id"`
	BranchID   *uuid.UUID        `json:"branch_id,omitempty"`
	Type       string            `json:"type"`
	Status     string            `json:"status"`
	IsActive   bool              `json:"is_active"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// CandidateCache is a read-through cache over the resource candidate lookup.
// Redis failures degrade to the underlying store; a booking must never fail
// because the cache is down.
type CandidateCache struct {
	rdb    *redis.Client
	inner  commands.ResourceReads
	ttl    time.Duration
	logger *slog.Logger
}

func NewCandidateCache(rdb *redis.Client, inner commands.ResourceReads, ttl time.Duration, logger *slog.Logger) *CandidateCache {
	return &CandidateCache{
		rdb:    rdb,
		inner:  inner,
		ttl:    ttl,
		logger: logger,
	}
}

func candidateKey(businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) string {
	branch := "-"
	if branchID != nil {
		branch = branchID.String()
	}
	return fmt.Sprintf("candidates:%s:%s:%s", businessID, branch, rtype)
}

func (c *CandidateCache) ListCandidates(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) ([]*resource.Resource, error) {
	key := candidateKey(businessID, branchID, rtype)

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		cached, decodeErr := decodeRecords(payload)
		if decodeErr == nil {
			return cached, nil
		}
		c.logger.Warn("キャッシュの復元に失敗しました", "key", key, "error", decodeErr)
	} else if err != redis.Nil {
		c.logger.Warn("キャッシュの取得に失敗しました", "key", key, "error", err)
	}

	candidates, err := c.inner.ListCandidates(ctx, businessID, branchID, rtype)
	if err != nil {
		return nil, err
	}

	if payload, err := encodeRecords(candidates); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("キャッシュの保存に失敗しました", "key", key, "error", err)
		}
	}

	return candidates, nil
}

func (c *CandidateCache) Invalidate(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, rtype resource.Type) error {
	key := candidateKey(businessID, branchID, rtype)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

func encodeRecords(candidates []*resource.Resource) ([]byte, error) {
	records := make([]resourceRecord, len(candidates))
	for i, r := range candidates {
		records[i] = resourceRecord{
			ID:         r.ID(),
			BusinessID: r.BusinessID(),
			BranchID:   r.BranchID(),
			Type:       r.Type().String(),
			Status:     r.Status().String(),
			IsActive:   r.IsActive(),
			Attributes: r.Attributes(),
		}
	}
	return json.Marshal(records)
}

func decodeRecords(payload []byte) ([]*resource.Resource, error) {
	var records []resourceRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}

	result := make([]*resource.Resource, len(records))
	for i, rec := range records {
		rtype, err := resource.NewType(rec.Type)
		if err != nil {
			return nil, err
		}
		status, err := resource.NewStatus(rec.Status)
		if err != nil {
			return nil, err
		}
		entity, err := resource.NewResource(rec.ID, rec.BusinessID, rec.BranchID, rtype, status, rec.IsActive, rec.Attributes)
		if err != nil {
			return nil, err
		}
		result[i] = entity
	}
	return result, nil
}
