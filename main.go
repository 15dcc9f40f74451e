package main

import "github.com/hance08/cashflow/cmd"

func main() {
	cmd.Execute()
}
