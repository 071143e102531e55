package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dev-assistant/internal/logger"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat loop on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := newProjectManager(logger.New("project"))
			if err != nil {
				return err
			}
			a, err := newAssistant(projects, logger.New("assistant"))
			if err != nil {
				return err
			}

			fmt.Println("Assistant is ready. Type 'exit' or 'quit' to end the conversation.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("You: ")
				if !scanner.Scan() {
					break
				}
				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if lower := strings.ToLower(input); lower == "exit" || lower == "quit" {
					break
				}
				reply := a.Respond(cmd.Context(), "cli", input)
				fmt.Printf("Assistant: %s\n", reply)
			}
			return scanner.Err()
		},
	}
}
