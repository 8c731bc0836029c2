package main

import "github.com/dcastaneda/security-admin/cmd"

func main() {
	cmd.Execute()
}
