package main

import "job-management-api/app"

func main() {
	app.Run()
}
