package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrWordsNotFound = errors.New("words not found")

type WordRepository interface {
	Words(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, words []string) error
	Count(ctx context.Context) (int64, error)
}

type dbWords struct {
	client *redis.Client
	key    string
}

func NewWordRepository(client *redis.Client, key string) WordRepository {
	return &dbWords{
		client: client,
		key:    key,
	}
}

func (that *dbWords) Words(ctx context.Context) ([]string, error) {
	words, err := that.client.LRange(ctx, that.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %w", err)
	}

	if len(words) == 0 {
		return nil, ErrWordsNotFound
	}

	return words, nil
}

func (that *dbWords) Replace(ctx context.Context, words []string) error {
	values := make([]any, 0, len(words))
	for _, word := range words {
		values = append(values, word)
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, that.key)
		if len(values) > 0 {
			pipe.RPush(ctx, that.key, values...)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace words: %w", err)
	}

	return nil
}

func (that *dbWords) Count(ctx context.Context) (int64, error) {
	count, err := that.client.LLen(ctx, that.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}

	return count, nil
}
