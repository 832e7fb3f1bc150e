package sentry

import (
	"fmt"

	"student-union-system/config"

	"github.com/getsentry/sentry-go"
)

// Init 初始化 Sentry SDK，未配置 DSN 时跳过
func Init() error {
	cfg := config.Get()

	if cfg.Sentry.Dsn == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.Dsn,
		Environment: string(cfg.Mode),
		Release:     "student-union-system@1.0.0",
		SampleRate:  1.0, // 错误事件 100% 上报，不采样
		EnableLogs:  true,
	})

	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}

	return nil
}
