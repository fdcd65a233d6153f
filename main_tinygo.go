//go:build tinygo

package main

import (
	"tiestrike/app"
	"tiestrike/hal"
)

func main() {
	app.Run(hal.New())
}
