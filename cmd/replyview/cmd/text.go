package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	reply "github.com/zostay/go-reply"
)

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Parse a plain-text body from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func RunText(cmd *cobra.Command, args []string) error {
	var body []byte
	var err error
	if len(args) == 0 {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	render(reply.Parse(string(body), reply.WithSender(sender)))
	return nil
}
