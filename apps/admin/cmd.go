package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/term"

	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/tutor"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	stdin         io.Reader
	stdout        io.Writer
	clock         clockwork.Clock
	responseDelay time.Duration
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintln(cli.stdout, "  personas - list the teachers and subjects")
	fmt.Fprintln(cli.stdout, "  search -q QUERY - search teachers and subjects")
	fmt.Fprintln(cli.stdout, "  ask -persona ID QUESTION - print the teacher's answer to QUESTION")
	fmt.Fprintln(cli.stdout, "  generate -topic TOPIC - print the content generated for TOPIC")
	fmt.Fprintln(cli.stdout, "  chat -persona ID - chat with a teacher, one message per line")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	searchCmd := flag.NewFlagSet("search", flag.ContinueOnError)
	searchQuery := searchCmd.String("q", "", "The search query. Typos are tolerated.")

	askCmd := flag.NewFlagSet("ask", flag.ContinueOnError)
	askPersona := askCmd.String("persona", "", "The ID of the teacher to ask.")

	generateCmd := flag.NewFlagSet("generate", flag.ContinueOnError)
	generateTopic := generateCmd.String("topic", "", "The topic to generate content for.")

	chatCmd := flag.NewFlagSet("chat", flag.ContinueOnError)
	chatPersona := chatCmd.String("persona", "", "The ID of the teacher to chat with.")

	for _, cmd := range []*flag.FlagSet{searchCmd, askCmd, generateCmd, chatCmd} {
		cmd.SetOutput(cli.stdout)
	}

	switch args[1] {
	case "personas":
		cli.printSearchResult(tutor.Search(""))
		return nil
	case "search":
		if err := searchCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		cli.printSearchResult(tutor.Search(*searchQuery))
		return nil
	case "ask":
		if err := askCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		question := strings.Join(askCmd.Args(), " ")
		if *askPersona == "" || strings.TrimSpace(question) == "" {
			askCmd.Usage()
			return errHelp
		}
		return cli.ask(*askPersona, question)
	case "generate":
		if err := generateCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *generateTopic == "" {
			generateCmd.Usage()
			return errHelp
		}
		fmt.Fprintln(cli.stdout, classroom.GeneratedBody(strings.ToLower(*generateTopic)))
		return nil
	case "chat":
		if err := chatCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *chatPersona == "" {
			chatCmd.Usage()
			return errHelp
		}
		return cli.chat(*chatPersona, isTerminalFunc(int(os.Stdin.Fd())))
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printSearchResult(res tutor.SearchResult) {
	fmt.Fprintln(cli.stdout, "Teachers:")
	for _, p := range res.Personas {
		fmt.Fprintf(cli.stdout, "  %s\t%s\t%s\t%.1f\n", p.ID, p.Name, p.Subject, p.Rating)
	}
	fmt.Fprintln(cli.stdout, "Subjects:")
	for _, s := range res.Subjects {
		fmt.Fprintf(cli.stdout, "  %s\t%s\n", s.ID, s.Name)
	}
}

func (cli *commandLine) ask(personaID, question string) error {
	persona, err := tutor.FindPersona(personaID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.stdout, tutor.SelectResponse(question, persona))
	return nil
}
