package main

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/medhistory/medhistory/core/session"
	"github.com/medhistory/medhistory/core/user"
	apisvc "github.com/medhistory/medhistory/services/api"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp         = errors.New("help provided")
	errNotLoggedIn  = errors.New("not logged in; run: medhistory login -email EMAIL")
	errWrongConfirm = errors.New("passwords do not match")
)

type commandLine struct {
	api     *apisvc.Client
	session *session.Store
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL                 - log in; the password is prompted")
	fmt.Fprintln(cli.out, "  logout                             - clear the stored session")
	fmt.Fprintln(cli.out, "  whoami                             - show the logged-in account")
	fmt.Fprintln(cli.out, "  submit -doctor ID ...              - submit a consultation (student)")
	fmt.Fprintln(cli.out, "  inbox [-status all|pending|evaluated] - list assigned consultations (doctor)")
	fmt.Fprintln(cli.out, "  mydocs [-status all|pending|evaluated] - list own submissions (student)")
	fmt.Fprintln(cli.out, "  grade -id DOC -grade N -feedback TEXT ... - grade a consultation (doctor)")
	fmt.Fprintln(cli.out, "  users                              - list all accounts (admin)")
	fmt.Fprintln(cli.out, "  adduser -name NAME -email EMAIL -role ROLE - create an account (admin)")
	fmt.Fprintln(cli.out, "  deluser -id ID                     - delete an account (admin)")
	fmt.Fprintln(cli.out, "  doctors                            - list doctor accounts")
	fmt.Fprintln(cli.out, "  notifications [-read ID]           - list notifications / mark one read")
	fmt.Fprintln(cli.out, "  contact -name NAME -email EMAIL -subject S -message M - send a contact mail")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "submit":
		return cli.submit(args[2:])
	case "inbox":
		return cli.inbox(args[2:])
	case "mydocs":
		return cli.myDocs(args[2:])
	case "grade":
		return cli.grade(args[2:])
	case "users":
		return cli.users()
	case "adduser":
		return cli.addUser(args[2:])
	case "deluser":
		return cli.delUser(args[2:])
	case "doctors":
		return cli.doctors()
	case "notifications":
		return cli.notifications(args[2:])
	case "contact":
		return cli.contact(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// identity returns who the stored token says we are.
func (cli *commandLine) identity() (*user.Identity, error) {
	if id := cli.session.Identity(); id != nil {
		return id, nil
	}
	return nil, errNotLoggedIn
}

func (cli *commandLine) promptPassword(confirm bool) (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	if !confirm {
		return string(pwd), nil
	}
	fmt.Fprint(cli.out, "Confirm password:")
	pwd2, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	if string(pwd) != string(pwd2) {
		return "", errWrongConfirm
	}
	return string(pwd), nil
}

func (cli *commandLine) newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 8, 2, ' ', 0)
}
