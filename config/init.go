package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// defaultConfig 返回默认配置。配置文件和环境变量按顺序覆盖默认值。
func defaultConfig() *Config {
	return &Config{
		Host:   "127.0.0.1",
		Port:   "5000",
		Prefix: "api",
		Mode:   ModeDebug,
		Sqlite: Sqlite{
			Path: "feedback.db",
		},
		Session: Session{
			Secret:     "xx-student-union-secret-key-please-change-in-production",
			CookieName: "admin_session",
		},
		Mail: Mail{
			Host:   "smtp.qq.com",
			Port:   465,
			Enable: true,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
	}
}

// Init 加载配置：默认值 -> config.yaml（可选）-> 环境变量。
func Init() {
	once.Do(func() {
		cfg := defaultConfig()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(err)
			}
		}

		// 环境变量具有最高优先级，前缀 SUS，如 SUS_PORT、SUS_MAIL_SENDER
		if err := envconfig.Process("sus", cfg); err != nil {
			panic(err)
		}

		instance = cfg
	})
}

// Get 获取全局配置实例，未初始化时自动执行 Init。
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
