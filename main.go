package main

import (
	"github.com/yusufakg/AmiiboGenerator/internal/app"
)

func main() {
	app.Run()
}
