package model

import "time"

// TimeLayout 数据库中时间字段统一的展示格式
const TimeLayout = "2006-01-02 15:04:05"

// Now 返回当前时间的展示字符串，写入 created_at 字段
func Now() string {
	return time.Now().Format(TimeLayout)
}
