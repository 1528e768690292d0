package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/medhistory/medhistory/core/user"
)

func (cli *commandLine) users() error {
	users, err := cli.api.Users(context.Background())
	if err != nil {
		return err
	}

	w := cli.newTabWriter()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, usr := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", usr.ID, usr.Name, usr.Email, usr.Role, usr.IsActive)
	}
	return w.Flush()
}

func (cli *commandLine) doctors() error {
	doctors, err := cli.api.Doctors(context.Background())
	if err != nil {
		return err
	}

	w := cli.newTabWriter()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, usr := range doctors {
		fmt.Fprintf(w, "%d\t%s\t%s\n", usr.ID, usr.Name, usr.Email)
	}
	return w.Flush()
}

func (cli *commandLine) addUser(args []string) error {
	fs := flag.NewFlagSet("adduser", flag.ExitOnError)
	name := fs.String("name", "", "The account's full name")
	email := fs.String("email", "", "The account's email")
	role := fs.String("role", "", "One of: "+strings.Join(user.AllRoles, ", "))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *role == "" {
		fs.Usage()
		return errHelp
	}

	pwd, err := cli.promptPassword(true /* confirm */)
	if err != nil {
		return err
	}
	if pwd == "" {
		fs.Usage()
		return errHelp
	}

	nu := user.NewUser{
		Name:            *name,
		Email:           *email,
		Role:            *role,
		Password:        pwd,
		PasswordConfirm: pwd,
	}
	if err := nu.Validate(); err != nil {
		return err
	}

	usr, err := cli.api.CreateUser(context.Background(), nu)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "user created: %d %s (%s)\n", usr.ID, usr.Email, usr.Role)
	return nil
}

func (cli *commandLine) delUser(args []string) error {
	fs := flag.NewFlagSet("deluser", flag.ExitOnError)
	id := fs.Int("id", 0, "ID of the account to delete (see: users)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		fs.Usage()
		return errHelp
	}

	if err := cli.api.DeleteUser(context.Background(), *id); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "user %d deleted\n", *id)
	return nil
}
