package main

import "github.com/Reminerva/Proyek-Data-Analysis/cmd"

func main() {
	cmd.Execute()
}
