/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/thechaitanyaanand/preseguide-api/cmd"

// @title           PreseGuide API
// @version         1.0.0
// @description     An API for practicing presentations with recording analysis, scoring, and coaching feedback
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/thechaitanyaanand/preseguide-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
