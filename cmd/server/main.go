package main

import "nf-demos/go_backend/internal/app"

func main() {
	app.Run()
}
