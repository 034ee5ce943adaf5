package main

import "github.com/elizabeth-dyson/tidytuesday-tuition/cmd"

func main() {
	cmd.Execute()
}
