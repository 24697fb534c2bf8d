package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-reply/cmd/replyview/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
