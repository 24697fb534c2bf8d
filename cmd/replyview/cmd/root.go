package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	reply "github.com/zostay/go-reply"
)

var rootCmd = &cobra.Command{
	Use:   "replyview",
	Short: "Show the text a sender actually wrote in an email reply",
}

var (
	showAll bool
	sender  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&showAll, "all", "a", false,
		"show every fragment with its classification flags")
	rootCmd.PersistentFlags().StringVarP(&sender, "sender", "s", "",
		"sender address for name-based signature detection")
}

func Execute() error {
	return rootCmd.Execute()
}

func render(email *reply.Email) {
	if !showAll {
		fmt.Println(email.VisibleText())
		return
	}
	for i, f := range email.Fragments() {
		fmt.Printf("--- fragment %d (%s) ---\n%s\n", i, flagList(f), f)
	}
}

func flagList(f *reply.Fragment) string {
	flags := make([]string, 0, 5)
	if f.Quoted() {
		flags = append(flags, "quoted")
	}
	if f.Signature() {
		flags = append(flags, "signature")
	}
	if f.ReplyHeader() {
		flags = append(flags, "reply-header")
	}
	if f.Forwarded() {
		flags = append(flags, "forwarded")
	}
	if f.Hidden() {
		flags = append(flags, "hidden")
	}
	if len(flags) == 0 {
		return "visible"
	}
	return strings.Join(flags, ",")
}
