package tools

// PanicOnErr 进程启动阶段的致命错误直接 panic
func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
