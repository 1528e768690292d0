package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core/user"
)

func (cli *commandLine) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "The account's email. The password will be prompted next.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errHelp
	}

	pwd, err := cli.promptPassword(false)
	if err != nil {
		return err
	}
	if pwd == "" {
		fs.Usage()
		return errHelp
	}

	creds := user.Credentials{Email: *email, Password: pwd}
	if err := creds.Validate(); err != nil {
		return err
	}
	res, err := cli.api.Login(context.Background(), creds)
	if err != nil {
		return err
	}
	if err := cli.session.SetLogin(res.Token, res.User); err != nil {
		return errors.Wrap(err, "saving session")
	}

	fmt.Fprintf(cli.out, "logged in as %s (%s)\n", res.User.Name, res.User.Role)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.session.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	id, err := cli.identity()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s <%s> [%s]\n", id.Name, id.Email, id.Role)
	return nil
}
