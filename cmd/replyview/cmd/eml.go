package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	reply "github.com/zostay/go-reply"
	"github.com/zostay/go-reply/internal/eml"
)

var emlCmd = &cobra.Command{
	Use:   "eml file",
	Short: "Parse a raw .eml message, taking the sender from its From header",
	Args:  cobra.ExactArgs(1),
	RunE:  RunEml,
}

func init() {
	rootCmd.AddCommand(emlCmd)
}

func RunEml(cmd *cobra.Command, args []string) error {
	msgFile, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = msgFile.Close() }()

	m, err := eml.Read(msgFile)
	if err != nil {
		return err
	}

	from := sender
	if from == "" {
		from = m.From
	}

	if showAll {
		fmt.Printf("From: %s\nSubject: %s\nDate: %s\n\n",
			m.From, m.Subject, m.Date.Format(time.RFC1123Z))
	}
	render(reply.Parse(m.Text, reply.WithSender(from)))
	return nil
}
