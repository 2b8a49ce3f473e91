package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/rolodex/internal/directory/domain"
	"github.com/samber/lo"
)

var errMissingArguments = errors.New("enter the argument for the command")

// handlerFunc is the contract between the shell and the core: parsed
// arguments in, one user-facing line out. Validation failures come back as
// errors and never escape past the dispatch table.
type handlerFunc func(args []string, dir *domain.Directory) (string, error)

// renderErrors adapts a handler so any returned error is rendered as the
// reply string. This is the single error boundary for the whole shell.
func renderErrors(h handlerFunc) func(args []string, dir *domain.Directory) string {
	return func(args []string, dir *domain.Directory) string {
		msg, err := h(args, dir)
		if err != nil {
			return "Error: " + err.Error()
		}
		return msg
	}
}

// newDispatch builds the command table. The birthdays handler closes over
// the configured window.
func newDispatch(windowDays int) map[string]func(args []string, dir *domain.Directory) string {
	handlers := map[string]handlerFunc{
		"add":           addContact,
		"change":        changePhone,
		"phone":         showPhone,
		"all":           showAll,
		"delete":        deleteContact,
		"add-birthday":  addBirthday,
		"show-birthday": showBirthday,
		"birthdays": func(_ []string, dir *domain.Directory) (string, error) {
			return upcomingBirthdays(dir, time.Now(), windowDays)
		},
	}

	dispatch := make(map[string]func(args []string, dir *domain.Directory) string, len(handlers))
	for name, h := range handlers {
		dispatch[name] = renderErrors(h)
	}
	return dispatch
}

func addContact(args []string, dir *domain.Directory) (string, error) {
	if len(args) < 1 {
		return "", errMissingArguments
	}
	name := args[0]
	var phone string
	if len(args) > 1 {
		phone = args[1]
	}

	rec, found := dir.Find(name)
	if !found {
		rec, err := domain.NewRecord(name)
		if err != nil {
			return "", err
		}
		dir.AddRecord(rec)
		if phone == "" {
			return fmt.Sprintf("Contact %q created without phone.", name), nil
		}
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Contact %q created with phone %s.", name, phone), nil
	}

	if phone == "" {
		return fmt.Sprintf("Contact %q already exists.", name), nil
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s added to contact %q.", phone, name), nil
}

func changePhone(args []string, dir *domain.Directory) (string, error) {
	if len(args) < 3 {
		return "", errMissingArguments
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, found := dir.Find(name)
	if !found {
		return "", fmt.Errorf("contact %q not found", name)
	}
	matched, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	if !matched {
		return "", fmt.Errorf("phone %s not found", oldPhone)
	}
	return "Contact updated.", nil
}

func showPhone(args []string, dir *domain.Directory) (string, error) {
	if len(args) < 1 {
		return "", errMissingArguments
	}
	name := args[0]

	rec, found := dir.Find(name)
	if !found {
		return "", fmt.Errorf("contact %q not found", name)
	}
	if len(rec.Phones()) == 0 {
		return fmt.Sprintf("Contact %q has no phones.", name), nil
	}
	phones := lo.Map(rec.Phones(), func(p domain.Phone, _ int) string {
		return p.String()
	})
	return fmt.Sprintf("Phones of %s: %s", name, strings.Join(phones, ", ")), nil
}

func showAll(_ []string, dir *domain.Directory) (string, error) {
	records := dir.Records()
	if len(records) == 0 {
		return "No contacts found.", nil
	}
	lines := lo.Map(records, func(rec *domain.Record, _ int) string {
		return rec.String()
	})
	return strings.Join(lines, "\n"), nil
}

func deleteContact(args []string, dir *domain.Directory) (string, error) {
	if len(args) < 1 {
		return "", errMissingArguments
	}
	name := args[0]

	if !dir.Delete(name) {
		return "", fmt.Errorf("contact %q not found", name)
	}
	return fmt.Sprintf("Contact %q deleted.", name), nil
}

func addBirthday(args []string, dir *domain.Directory) (string, error) {
	if len(args) < 2 {
		return "", errMissingArguments
	}
	name, birthday := args[0], args[1]

	rec, found := dir.Find(name)
	if !found {
		rec, err := domain.NewRecord(name)
		if err != nil {
			return "", err
		}
		dir.AddRecord(rec)
		if err := rec.AddBirthday(birthday); err != nil {
			return "", err
		}
		return fmt.Sprintf("Contact %q created with birthday %s.", name, birthday), nil
	}

	if err := rec.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday %s added to contact %q.", birthday, name), nil
}

func showBirthday(args []string, dir *domain.Directory) (string, error) {
	if len(args) < 1 {
		return "", errMissingArguments
	}
	name := args[0]

	rec, found := dir.Find(name)
	if !found {
		return "", fmt.Errorf("contact %q not found", name)
	}
	if rec.Birthday() == nil {
		return "", fmt.Errorf("contact %q has no birthday", name)
	}
	return fmt.Sprintf("Birthday of %s is %s", name, rec.Birthday().Format()), nil
}

func upcomingBirthdays(dir *domain.Directory, today time.Time, windowDays int) (string, error) {
	reminders := dir.UpcomingBirthdays(today, windowDays)
	if len(reminders) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := []string{"Upcoming birthdays:"}
	for _, r := range reminders {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Name, r.CongratulationDate))
	}
	return strings.Join(lines, "\n"), nil
}
