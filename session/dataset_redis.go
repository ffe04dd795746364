package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var ErrDatasetNotFound = errors.New("dataset is not existed")

// DatasetRedis is the string-keyed hand-off store. One key per dataset,
// expiring with the session TTL; Save, Get and Clear are the whole contract.
type DatasetRedis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDatasetStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DatasetRedis {
	return &DatasetRedis{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func datasetKey(id string) string {
	return fmt.Sprintf("dataset:%s", id)
}

func (store *DatasetRedis) Save(ctx context.Context, dataset Dataset) error {
	bytes, err := json.Marshal(dataset)
	if err != nil {
		return err
	}

	err = store.client.Set(ctx, datasetKey(dataset.ID), bytes, store.ttl).Err()
	if err != nil {
		return err
	}

	store.logger.Info("Dataset stored",
		zap.String("id", dataset.ID),
		zap.Int("records", len(dataset.Records)),
		zap.Int("skipped", len(dataset.Skipped)))
	return nil
}

func (store *DatasetRedis) Get(ctx context.Context, id string) (*Dataset, error) {
	bytes, err := store.client.Get(ctx, datasetKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrDatasetNotFound
	}
	if err != nil {
		return nil, err
	}

	var dataset Dataset
	if err := json.Unmarshal(bytes, &dataset); err != nil {
		return nil, fmt.Errorf("Error decoding stored dataset: %s", err)
	}
	return &dataset, nil
}

func (store *DatasetRedis) Clear(ctx context.Context, id string) error {
	return store.client.Del(ctx, datasetKey(id)).Err()
}
