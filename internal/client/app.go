package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-car-rental/internal/adapter"
	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

type command struct {
	usage        string
	authenticate bool
	run          func(ctx context.Context, args []string) error
}

type App struct {
	api      adapter.RentalAPI
	username string
	password string

	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

// NewApp builds the client over api. Credentials from cfg are used by the
// commands that require a logged-in user.
func NewApp(api adapter.RentalAPI, cfg config.Adapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:      api,
		username: cfg.Username,
		password: cfg.Password,
		out:      out,
		logger:   logger,
	}

	a.commands = map[string]command{
		"version":   {usage: "show the server build", run: a.version},
		"register":  {usage: "create an account: -username -password [-first -last -email -phone]", run: a.register},
		"username":  {usage: "check whether a username is taken: -name", run: a.usernameExists},
		"cars":      {usage: "list cars: [-available] [-page] [-size]", authenticate: true, run: a.cars},
		"packages":  {usage: "list car packages", authenticate: true, run: a.packages},
		"order":     {usage: "rent a car: -package -hours", authenticate: true, run: a.order},
		"orders":    {usage: "list your orders", authenticate: true, run: a.orders},
		"link-card": {usage: "link a credit card: -number -month -year -cvv", authenticate: true, run: a.linkCard},
		"balance":   {usage: "show the balance of your card", authenticate: true, run: a.balance},
		"keys":      {usage: "list your access keys", authenticate: true, run: a.keys},
		"return":    {usage: "return the car of an order: -order", authenticate: true, run: a.returnCar},
	}

	return a
}

// Run implements [Client]. args[0] selects the command, the rest are its flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if cmd.authenticate {
		if err := a.login(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) login(ctx context.Context) error {
	if a.username == "" || a.password == "" {
		return ErrNoCredentials
	}
	if err := a.api.Login(ctx, a.username, a.password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: client <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %-10s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func requireFlags(values map[string]string) error {
	var missing []string
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingFlag, strings.Join(missing, ", "))
	}
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	return a.print(v)
}

func (a *App) register(ctx context.Context, args []string) error {
	var user models.User
	fs := a.newFlagSet("register")
	fs.StringVar(&user.Username, "username", "", "login name")
	fs.StringVar(&user.Password, "password", "", "password")
	fs.StringVar(&user.FirstName, "first", "", "first name")
	fs.StringVar(&user.LastName, "last", "", "last name")
	fs.StringVar(&user.Email, "email", "", "e-mail address")
	fs.StringVar(&user.Phone, "phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"username": user.Username, "password": user.Password}); err != nil {
		return err
	}

	registered, err := a.api.Register(ctx, user)
	if err != nil {
		return err
	}
	return a.print(registered)
}

func (a *App) usernameExists(ctx context.Context, args []string) error {
	fs := a.newFlagSet("username")
	name := fs.String("name", "", "username to check")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"name": *name}); err != nil {
		return err
	}

	exists, err := a.api.UsernameExists(ctx, *name)
	if err != nil {
		return err
	}
	return a.print(models.UsernameCheckResponse{Username: *name, Exists: exists})
}

func (a *App) cars(ctx context.Context, args []string) error {
	fs := a.newFlagSet("cars")
	available := fs.Bool("available", false, "only cars that can be rented now")
	page := fs.Int("page", 0, "page number, 0-based")
	size := fs.Int("size", models.DefaultPageSize, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cars, err := a.api.ListCars(ctx, *available, models.Page{Number: *page, Size: *size})
	if err != nil {
		return err
	}
	return a.print(cars)
}

func (a *App) packages(ctx context.Context, _ []string) error {
	packages, err := a.api.ListCarPackages(ctx)
	if err != nil {
		return err
	}
	return a.print(packages)
}

func (a *App) order(ctx context.Context, args []string) error {
	var order models.OrderRequest
	fs := a.newFlagSet("order")
	fs.StringVar(&order.CarPackage, "package", "", "car package name")
	fs.IntVar(&order.Hours, "hours", 1, "rental hours")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"package": order.CarPackage}); err != nil {
		return err
	}

	accessKey, err := a.api.SubmitOrder(ctx, order)
	if err != nil {
		return err
	}
	return a.print(accessKey)
}

func (a *App) orders(ctx context.Context, _ []string) error {
	orders, err := a.api.GetOrders(ctx)
	if err != nil {
		return err
	}
	return a.print(orders)
}

func (a *App) linkCard(ctx context.Context, args []string) error {
	var card models.CreditCard
	fs := a.newFlagSet("link-card")
	fs.StringVar(&card.CardNumber, "number", "", "card number")
	fs.IntVar(&card.Month, "month", 0, "expiry month")
	fs.IntVar(&card.Year, "year", 0, "expiry year")
	fs.StringVar(&card.CVV, "cvv", "", "card security code")
	fs.Int64Var(&card.AccountBalance, "balance", 0, "opening balance in the smallest currency unit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags(map[string]string{"number": card.CardNumber, "cvv": card.CVV}); err != nil {
		return err
	}

	if err := a.api.LinkCreditCard(ctx, card); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "credit card linked")
	return nil
}

func (a *App) balance(ctx context.Context, _ []string) error {
	balance, err := a.api.GetBalance(ctx)
	if err != nil {
		return err
	}
	return a.print(balance)
}

func (a *App) keys(ctx context.Context, _ []string) error {
	keys, err := a.api.ListAccessKeys(ctx)
	if err != nil {
		return err
	}
	return a.print(keys)
}

func (a *App) returnCar(ctx context.Context, args []string) error {
	fs := a.newFlagSet("return")
	orderID := fs.Int64("order", 0, "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *orderID <= 0 {
		return fmt.Errorf("%w: -order", ErrMissingFlag)
	}

	if err := a.api.ReturnCar(ctx, *orderID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "car of order %d returned\n", *orderID)
	return nil
}
