package shell

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System/internal/cmd/alerts"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/constants"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/logging"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System/pkg/records"
)

// InvalidOption is printed for an answer that names no menu entry.
const InvalidOption = "Invalid option!"

type action struct {
	label string
	run   func(ctx context.Context) error
}

// menu is a numbered list of actions followed by an entry that leaves it.
type menu struct {
	title   string
	actions []action
	back    string
}

// loop shows m until its back entry is chosen. Action errors are printed
// and the menu is shown again; only session-ending errors are returned.
func (sh *Shell) loop(ctx context.Context, m menu) error {
	for {
		fmt.Fprintf(sh.out, "\n=== %s ===\n", m.title)
		for i, a := range m.actions {
			fmt.Fprintf(sh.out, "%d. %s\n", i+1, a.label)
		}
		backChoice := len(m.actions) + 1
		fmt.Fprintf(sh.out, "%d. %s\n", backChoice, m.back)

		answer, err := sh.readLine(ctx, "Enter choice: ")
		if err != nil {
			return err
		}
		choice, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil || choice < 1 || choice > backChoice:
			sh.notify(alerts.NewError(InvalidOption))
			continue
		case choice == backChoice:
			return nil
		}

		a := m.actions[choice-1]
		actx := logging.WithOperation(ctx, a.label)
		if err := a.run(actx); err != nil {
			if isEnd(err) {
				return err
			}
			logging.FromContext(logging.WithError(actx, err)).Debug().Msg("Menu action failed")
			sh.notify(alerts.FromError(err))
		}
	}
}

func (sh *Shell) mainMenu(ctx context.Context) error {
	return sh.loop(ctx, menu{
		title: "Comic Book Store System",
		actions: []action{
			{"Admin Login", sh.adminLogin},
			{"Customer Login", sh.customerLogin},
		},
		back: "Exit",
	})
}

func (sh *Shell) adminLogin(ctx context.Context) error {
	username, err := sh.readLine(ctx, "Username: ")
	if err != nil {
		return err
	}
	password, err := sh.readLine(ctx, "Password: ")
	if err != nil {
		return err
	}

	if err := sh.shop.Authenticate(username, password); err != nil {
		logging.FromContext(ctx).Warn().Str("username", username).Msg("Admin login denied")
		return err
	}

	ctx = logging.WithSession(ctx, "admin", uuid.NewString())
	logging.FromContext(ctx).Info().Str("username", username).Msg("Admin logged in")
	sh.success("Welcome, %s", username)
	return sh.adminMenu(ctx)
}

// customerLogin resolves a customer by identifier or name. A blank answer
// continues as a walk-in customer.
func (sh *Shell) customerLogin(ctx context.Context) error {
	ref, err := sh.readLine(ctx, "Customer ID or name (blank for walk-in): ")
	if err != nil {
		return err
	}

	customer := records.Customer{ID: constants.WalkInCustomerID, Name: "walk-in customer"}
	if ref != "" {
		if customer, err = sh.findCustomer(ref); err != nil {
			return err
		}
	}

	ctx = logging.WithSession(ctx, "customer", uuid.NewString())
	ctx = logging.WithCustomer(ctx, customer.ID)
	logging.FromContext(ctx).Info().Msg("Customer session started")
	sh.success("Welcome, %s", customer.Name)
	return sh.customerMenu(ctx, customer)
}

// findCustomer resolves an identifier first, then a name.
func (sh *Shell) findCustomer(ref string) (records.Customer, error) {
	dir := sh.shop.Directory()
	if id, err := strconv.Atoi(ref); err == nil {
		if c, err := dir.FindByID(id); err == nil {
			return c, nil
		}
	}
	return dir.FindByName(ref)
}
