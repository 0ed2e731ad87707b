package main

import "craftlink/internal/app"

func main() {
	app.Run()
}
