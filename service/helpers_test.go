package service

import (
	"context"
	"errors"
	"time"

	"securitybot/pkg/logger"
	"securitybot/storage"
	"securitybot/storage/mock"
)

var errBroken = errors.New("storage unavailable")

// brokenKV fails every call.
type brokenKV struct{}

func (brokenKV) Get(context.Context, int64, string) (string, bool, error) { return "", false, errBroken }
func (brokenKV) Set(context.Context, int64, string, string) error         { return errBroken }
func (brokenKV) Delete(context.Context, int64, string) error              { return errBroken }
func (brokenKV) Clear(context.Context) error                              { return errBroken }
func (brokenKV) Close()                                                   {}

var fixedNow = time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)

func newTestManager(kv storage.IKeyValueStorage) IServiceManager {
	stg := mock.New(kv, logger.NewNop())
	return New(stg, logger.NewNop(), Options{Now: func() time.Time { return fixedNow }})
}
