package main

import "github.com/qoozee/qoozee/internal/cmd"

func main() {
	cmd.Execute()
}
