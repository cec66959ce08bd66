package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/societyops/societyctl/internal/cli"
	"github.com/societyops/societyctl/internal/model"
)

var noticesCmd = &cobra.Command{
	Use:   "notices",
	Short: "Post and view society notices",
	RunE:  runNoticesList,
}

var noticesPostCmd = &cobra.Command{
	Use:   "post <title> <body...>",
	Short: "Post a notice",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNoticesPost,
}

func init() {
	noticesCmd.AddCommand(noticesPostCmd)
	rootCmd.AddCommand(noticesCmd)
}

func runNoticesList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	notices, err := s.store.Notices()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(notices) == 0 {
		fmt.Println("  No notices posted.")
		fmt.Println()
		return nil
	}

	for _, n := range notices {
		fmt.Printf("  [%s] %s\n", cli.FormatDate(n.PostedAt), n.Title)
		fmt.Printf("      %s\n\n", n.Body)
	}
	return nil
}

func runNoticesPost(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.PostNotice(model.Notice{
		PostedAt: s.today,
		Title:    args[0],
		Body:     strings.Join(args[1:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Printf("  Notice #%d posted\n", id)
	return nil
}
