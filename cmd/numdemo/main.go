package main

import "github.com/HazyCorp/numdemo/internal/cmd/cmd"

func main() {
	cmd.Execute()
}
