package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/service"
	"github.com/MKhiriev/go-strings-editor/internal/validators"
	"github.com/MKhiriev/go-strings-editor/models"
)

const usage = `usage: strings-client [flags] <command>

commands:
  status                       show login state and the loaded partition
  login <username> <password>  store credentials and load strings
  logout                       forget stored credentials
  list [filter]                print entries, optionally filtered
  switch <partition>           switch to platform[/language]
  apply <changes.yaml>         replay a change set and commit it
  version                      print build information`

type command struct {
	minArgs, maxArgs int
	run              func(ctx context.Context, args []string) error
}

// App runs one command against the session coordinator.
type App struct {
	coordinator *service.Coordinator
	validator   validators.Validator
	out         io.Writer
	logger      *logger.Logger
}

func NewApp(coordinator *service.Coordinator, validator validators.Validator, out io.Writer, log *logger.Logger) *App {
	return &App{
		coordinator: coordinator,
		validator:   validator,
		out:         out,
		logger:      log,
	}
}

// Usage returns the command summary.
func Usage() string {
	return usage
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"status": {0, 0, a.status},
		"login":  {2, 2, a.login},
		"logout": {0, 0, a.logout},
		"list":   {0, 1, a.list},
		"switch": {1, 1, a.switchPartition},
		"apply":  {1, 1, a.apply},
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands()[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) < cmd.minArgs || len(rest) > cmd.maxArgs {
		return fmt.Errorf("%s: %w", name, ErrUsage)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(ctx, rest)
}

func (a *App) status(ctx context.Context, _ []string) error {
	if err := a.coordinator.Start(ctx); err != nil {
		return err
	}
	return a.printStatus()
}

func (a *App) login(ctx context.Context, args []string) error {
	if err := a.coordinator.SubmitCredentials(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if a.coordinator.Phase() != service.PhaseReady {
		return ErrLoginRejected
	}
	return a.printStatus()
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.coordinator.Logout(ctx)
	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) list(ctx context.Context, args []string) error {
	session, err := a.ready(ctx)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		session.SetFilter(&args[0])
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for row, entry := range session.Rows() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", row, entry.Key, entry.Value)
	}
	return tw.Flush()
}

func (a *App) switchPartition(ctx context.Context, args []string) error {
	target, err := models.ParsePartition(args[0])
	if err != nil {
		return err
	}

	session, err := a.ready(ctx)
	if err != nil {
		return err
	}

	if target == session.Partition() {
		_, err = fmt.Fprintf(a.out, "already on %s\n", target)
		return err
	}
	if err = a.switchTo(ctx, session, target); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "switched to %s, %d entries\n", target, len(session.Baseline()))
	return err
}

func (a *App) apply(ctx context.Context, args []string) error {
	changes, err := LoadChangeSet(args[0])
	if err != nil {
		return err
	}
	if err = changes.Validate(ctx, a.validator); err != nil {
		return fmt.Errorf("invalid change set: %w", err)
	}

	session, err := a.ready(ctx)
	if err != nil {
		return err
	}

	if !changes.Partition.IsZero() && changes.Partition != session.Partition() {
		if err = a.switchTo(ctx, session, changes.Partition); err != nil {
			return err
		}
	}

	for _, ins := range changes.Insert {
		if err = session.Insert(ins.Key, ins.Value); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		fmt.Fprintf(a.out, "insert %s: queued\n", strings.TrimSpace(ins.Key))
	}

	for _, ed := range changes.Edit {
		key := strings.TrimSpace(ed.Key)
		row, ok := session.RowForKey(key)
		if !ok {
			return fmt.Errorf("edit %s: %w", key, ErrUnknownKey)
		}

		outcome, err := session.Edit(row, ed.NewKey, ed.Value)
		if err != nil {
			return fmt.Errorf("edit %s: %w", key, err)
		}
		fmt.Fprintf(a.out, "edit %s: %s\n", key, outcome)
	}

	pending := session.PendingChangeCount()
	if pending == 0 {
		_, err = fmt.Fprintln(a.out, "nothing to commit")
		return err
	}

	if err = session.Commit(ctx, changes.Message); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "committed %d changes to %s\n", pending, session.Partition())
	return err
}

// ready starts the coordinator and returns its session.
func (a *App) ready(ctx context.Context) (*service.EditingSession, error) {
	if err := a.coordinator.Start(ctx); err != nil {
		return nil, err
	}

	session, err := a.coordinator.Session()
	if err != nil {
		a.logger.Debug().Err(err).Msg("no session")
		return nil, fmt.Errorf("%w: run \"login <username> <password>\" first", ErrLoginRequired)
	}
	return session, nil
}

func (a *App) switchTo(ctx context.Context, session *service.EditingSession, target models.Partition) error {
	decision := session.RequestPartitionSwitch(target)
	if decision.Kind == service.SwitchConfirmRequired {
		return fmt.Errorf("switch to %s: %d %w", target, decision.Count, ErrUnsavedChanges)
	}
	return session.CommitPartitionSwitch(ctx, target)
}

func (a *App) printStatus() error {
	phase := a.coordinator.Phase()
	fmt.Fprintf(a.out, "phase: %s\n", phase)
	if phase != service.PhaseReady {
		return nil
	}

	session, err := a.coordinator.Session()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "partition: %s\n", session.Partition())
	fmt.Fprintf(a.out, "entries: %d\n", len(session.Baseline()))
	if msg, ok := session.LastCommitMessage(); ok {
		fmt.Fprintf(a.out, "last commit: %s\n", msg)
	}
	return nil
}
