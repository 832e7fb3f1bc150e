package mail

import (
	"fmt"
	"log/slog"

	"student-union-system/config"
	"student-union-system/internal/global/logger"

	"gopkg.in/gomail.v2"
)

var log *slog.Logger

// Message 一封待发送的反馈通知
type Message struct {
	Name    string
	Email   string
	Content string
}

// queueSize 队列缓冲大小，超出即丢弃并告警
const queueSize = 64

var queue chan Message

// Init 启动后台发信协程。发信失败只记日志，不影响任何请求。
func Init() {
	log = logger.New("Mail")
	queue = make(chan Message, queueSize)
	go worker()
}

// Enqueue 将反馈通知交给后台协程，永不阻塞调用方。
// 队列满或未启用发信时静默放弃。
func Enqueue(name, email, content string) {
	if queue == nil || !config.Get().Mail.Enable {
		return
	}
	msg := Message{Name: name, Email: email, Content: content}
	select {
	case queue <- msg:
	default:
		log.Warn("邮件队列已满，丢弃反馈通知", "name", name, "email", email)
	}
}

func worker() {
	for msg := range queue {
		send(msg)
	}
}

// send 通过 SSL SMTP 将反馈内容发送到接收邮箱
func send(msg Message) {
	cfg := config.Get().Mail

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.Sender)
	m.SetHeader("To", cfg.Receiver)
	m.SetHeader("Subject", fmt.Sprintf("[学生会官网] 来自 %s 的意见反馈", msg.Name))
	m.SetBody("text/plain", fmt.Sprintf("姓名：%s\n邮箱：%s\n\n反馈内容：\n%s\n", msg.Name, msg.Email, msg.Content))

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.AuthCode)
	d.SSL = cfg.Port == 465

	if err := d.DialAndSend(m); err != nil {
		log.Error("邮件发送失败", "error", err, "receiver", cfg.Receiver)
		return
	}
	log.Info("反馈通知邮件已发送", "name", msg.Name, "receiver", cfg.Receiver)
}
