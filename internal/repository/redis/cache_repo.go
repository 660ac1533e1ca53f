package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/voice-backend/internal/cfg"
	"github.com/DRSN-tech/voice-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/clients"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.UserInfoConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.UserInfoConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetUsers возвращает закэшированных пользователей по ID, игнорируя промахи и логируя их
func (r *CacheRepo) GetUsers(ctx context.Context, ids []int64) (map[int64]usecase.UserInfo, error) {
	keys := r.buildUserCacheKeys(ids)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[int64]usecase.UserInfo, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			r.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		model, err := r.unmarshalUserFromCache(data)
		if err != nil {
			r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.ID != ids[i] {
			r.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", ids[i], model.ID)
			if err := r.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[ids[i]] = *r.conv.ToUseCase(model)
	}

	return result, nil
}

// SetUsers атомарно кэширует несколько пользователей с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (r *CacheRepo) SetUsers(ctx context.Context, users []usecase.UserInfo) error {
	models := r.conv.ToArrRedisModel(users)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := r.marshalUserForCache(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal user for caching (User ID: %d): %v", model.ID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		key := r.userKey(model.ID)
		pipeline.Set(ctx, key, data, r.cfg.UserTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteUsers удаляет пользователей из кэша по ID
func (r *CacheRepo) DeleteUsers(ctx context.Context, ids []int64) error {
	keys := r.buildUserCacheKeys(ids)

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// marshalUserForCache сериализует пользователя в JSON для кэша
func (r *CacheRepo) marshalUserForCache(model converter.UserInfoRedisModel) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// unmarshalUserFromCache десериализует JSON из кэша в модель пользователя
func (r *CacheRepo) unmarshalUserFromCache(data []byte) (*converter.UserInfoRedisModel, error) {
	var model converter.UserInfoRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// buildUserCacheKeys формирует Redis-ключи из ID пользователей
func (r *CacheRepo) buildUserCacheKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.userKey(id)
	}

	return keys
}

// userKey возвращает Redis-ключ для одного пользователя
func (r *CacheRepo) userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
