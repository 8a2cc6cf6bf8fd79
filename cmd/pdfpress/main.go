package main

import "github.com/SeakMengs/PdfPress/internal/cli"

func main() {
	cli.Execute()
}
