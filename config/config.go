package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

// 嵌套字段不要写裸的 envconfig 标签名（PATH、HOST、PORT）：
// envconfig 在带前缀的键未设置时会回退到无前缀的标签名，
// 裸名会命中进程环境里已有的同名变量。统一依赖派生键，如 SUS_SQLITE_PATH。
type Config struct {
	Host    string
	Port    string
	Prefix  string
	Mode    Mode
	Sqlite  Sqlite
	Session Session
	Mail    Mail
	Log     Log    `mapstructure:"Log"`
	Sentry  Sentry `mapstructure:"Sentry"`
}

type Sqlite struct {
	Path string `mapstructure:"path"` // 数据库文件路径
}

type Session struct {
	Secret     string `mapstructure:"secret"`                              // 会话签名密钥
	CookieName string `envconfig:"COOKIE_NAME" mapstructure:"cookie_name"` // 会话 Cookie 名称
}

type Mail struct {
	Host     string `mapstructure:"host"`                            // SMTP 服务器地址
	Port     int    `mapstructure:"port"`                            // SMTP 端口（465 为 SSL）
	Sender   string `mapstructure:"sender"`                          // 发送者邮箱
	AuthCode string `envconfig:"AUTH_CODE" mapstructure:"auth_code"` // SMTP 授权码，非登录密码
	Receiver string `mapstructure:"receiver"`                        // 接收反馈的邮箱
	Enable   bool   `mapstructure:"enable"`                          // 是否在提交反馈时发邮件
}

type Log struct {
	FilePath   string `envconfig:"FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `mapstructure:"level"`                               // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `mapstructure:"compress"`                            // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn string `mapstructure:"dsn"`
}
