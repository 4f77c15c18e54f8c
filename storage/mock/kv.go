package mock

import (
	"context"
	"sync"

	"securitybot/storage"
)

type kvKey struct {
	device int64
	key    string
}

// KV is an in-memory IKeyValueStorage. It survives for the lifetime of the
// value, so tests can simulate a restart by building new services over it.
type KV struct {
	mu   sync.RWMutex
	data map[kvKey]string
}

func NewKV() *KV {
	return &KV{data: make(map[kvKey]string)}
}

var _ storage.IKeyValueStorage = (*KV)(nil)

func (k *KV) Get(ctx context.Context, deviceID int64, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	v, ok := k.data[kvKey{deviceID, key}]
	return v, ok, nil
}

func (k *KV) Set(ctx context.Context, deviceID int64, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.data[kvKey{deviceID, key}] = value
	return nil
}

func (k *KV) Delete(ctx context.Context, deviceID int64, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.data, kvKey{deviceID, key})
	return nil
}

func (k *KV) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.data = make(map[kvKey]string)
	return nil
}

func (k *KV) Close() {}
