/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/cardiolab/ecg-annotator-api/cmd"

// @title           ECG Annotator API
// @version         1.0.0
// @description     An ECG signal synthesis and annotation overlay API with simulated beat detection
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/cardiolab/ecg-annotator-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
