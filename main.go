package main

import (
	"skill-marks-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
