package main

import (
	"context"
	"fmt"

	apisvc "github.com/Perlera89/campus/services/api"
)

func (cli *commandLine) login(identifier, pwd string) error {
	ctx := context.Background()

	cred := apisvc.Credentials{Identifier: identifier, Password: pwd}
	if err := cred.Validate(); err != nil {
		return err
	}

	sess, err := cli.client.SignIn(ctx, cred)
	if err != nil {
		return err
	}
	if err := cli.sessions.SetSession(ctx, sess); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Signed in as %s (%s)\n", sess.Username, sess.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.sessions.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Session cleared")
	return nil
}

func (cli *commandLine) whoami() error {
	if err := cli.sessions.Load(context.Background()); err != nil {
		return err
	}
	sess := cli.sessions.Session()
	if sess.IsAnonymous() {
		fmt.Fprintln(cli.out, "Not signed in")
		return nil
	}

	// the persisted partial only keeps tokens and role; rebuild identity
	sess, err := cli.client.ValidateToken(context.Background(), sess.AccessToken)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", sess.Username, sess.Email, sess.Role)
	return nil
}
