package main

import "student-union-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
