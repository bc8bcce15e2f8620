package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/trezcool/edumind/core/chat"
	"github.com/trezcool/edumind/core/tutor"
)

// chat runs a conversation with the persona until stdin is exhausted or the user types "exit".
// The prompt is only printed on interactive terminals.
func (cli *commandLine) chat(personaID string, interactive bool) error {
	persona, err := tutor.FindPersona(personaID)
	if err != nil {
		return err
	}

	conv := chat.NewConversation(cli.clock, cli.responseDelay)
	defer conv.Close()
	conv.SelectPersona(persona)
	for _, msg := range conv.Messages() {
		cli.printMessage(persona, msg)
	}

	scanner := bufio.NewScanner(cli.stdin)
	for {
		if interactive {
			fmt.Fprint(cli.stdout, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			return nil
		}

		if _, err := conv.Send(line); err != nil {
			if err == chat.ErrEmptyMessage {
				continue
			}
			return err
		}
		<-conv.ReplyDone()

		msgs := conv.Messages()
		cli.printMessage(persona, msgs[len(msgs)-1])
	}
}

func (cli *commandLine) printMessage(persona tutor.Persona, msg chat.Message) {
	if msg.Sender == chat.SenderAssistant {
		fmt.Fprintf(cli.stdout, "%s: %s\n", persona.Name, msg.Content)
	}
}
