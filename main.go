package main

import "github.com/eventscout/eventscout-api/cmd"

// @title           EventScout API
// @version         1.0.0
// @description     An event discovery API with scraping, search and map support
// @contact.name    API Support
// @contact.url     https://github.com/eventscout/eventscout-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
