/*
Copyright © 2026 Internet Imagery
*/
package main

import "github.com/internetimagery/nametag/cmd"

func main() {
	cmd.Execute()
}
