package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	apisvc "github.com/Perlera89/campus/services/api"
	"github.com/Perlera89/campus/store"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out      io.Writer
	client   *apisvc.Client
	sessions *store.SessionStore
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -identifier USERNAME|EMAIL - sign in; the password will be prompted next")
	fmt.Fprintln(cli.out, "  logout                           - clear the saved session")
	fmt.Fprintln(cli.out, "  whoami                           - print the saved session")
	fmt.Fprintln(cli.out, "  courses [-page N] [-limit N]     - list courses")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginIdentifier := loginCmd.String("identifier", "", "The account's username or email. The password will be prompted next.")

	coursesCmd := flag.NewFlagSet("courses", flag.ExitOnError)
	coursesPage := coursesCmd.Int("page", 1, "Page to fetch.")
	coursesLimit := coursesCmd.Int("limit", 10, "Courses per page.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginIdentifier == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginIdentifier, string(pwd))
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "courses":
		if err := coursesCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listCourses(*coursesPage, *coursesLimit)
	default:
		cli.printUsage()
		return errHelp
	}
}
