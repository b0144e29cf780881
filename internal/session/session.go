// Package session runs the interactive vault console: it holds the
// inventory, prints the menu, dispatches choices to the object model, and
// terminates on exit, end of input, or a stability collapse.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/quantum/internal/journal"
	"github.com/mesh-intelligence/quantum/internal/logger"
	"github.com/mesh-intelligence/quantum/pkg/types"
)

// State is the controller state.
type State int

// Controller states. A session starts Running and ends Terminated.
const (
	StateRunning State = iota
	StateTerminated
)

// Outcome tells how a session terminated.
type Outcome string

// Session outcomes.
const (
	OutcomeExit     Outcome = "exit"
	OutcomeCollapse Outcome = "collapse"
	OutcomeEOF      Outcome = "eof"
	OutcomeCanceled Outcome = "canceled"
	OutcomeError    Outcome = "error"
)

// Menu choices.
const (
	choiceAdd      = "1"
	choiceList     = "2"
	choiceAnalyze  = "3"
	choiceCooldown = "4"
	choiceExit     = "5"
)

// Console text.
const (
	greeting = "--- OMEGA SECTOR SECURITY TERMINAL ---"
	menu     = `
=== QUANTUM VAULT CONTROL PANEL ===
1. Add New Object
2. List Inventory
3. Analyze Object
4. Emergency Cooldown
5. Exit
`
	promptChoice   = "Choice: "
	promptAnalyze  = "Object ID to analyze: "
	promptCooldown = "Object ID to cool down: "

	msgListHeader  = "\n--- INVENTORY STATUS ---"
	msgEmpty       = "Vault is empty."
	msgNotFound    = "Object not found."
	msgNotCoolable = "ERROR: this object cannot be cooled down!"
	msgInvalid     = "Invalid choice, try again."
	msgExit        = "Shift over. See you, chief."
	bannerRule     = "**************************************"
)

// errEndOfInput reports that the input stream ended mid-session.
var errEndOfInput = errors.New("end of input")

// inputLine is one line, or the read error that ended the input.
type inputLine struct {
	text string
	err  error
}

// Result describes a finished session.
type Result struct {
	Outcome Outcome
	// CollapsedID is the id of the object that collapsed, set only for
	// OutcomeCollapse.
	CollapsedID string
	// Objects is the inventory size at termination.
	Objects int
}

// Options wires a Session to its collaborators. In, Out, Source and IDs
// are required; Journal and Logger may be nil.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Source  Source
	IDs     IDGenerator
	Journal *journal.Journal
	Logger  *logger.Logger
}

// Session is a single run of the vault console.
type Session struct {
	in      *bufio.Reader
	lines   chan inputLine
	out     io.Writer
	src     Source
	ids     IDGenerator
	journal *journal.Journal
	log     *logger.Logger

	inv    *Inventory
	state  State
	result Result
}

// New creates a running session with an empty inventory.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Session{
		in:      bufio.NewReader(opts.In),
		out:     opts.Out,
		src:     opts.Source,
		ids:     opts.IDs,
		journal: opts.Journal,
		log:     log,
		inv:     NewInventory(),
		state:   StateRunning,
	}
}

// Inventory returns the session inventory.
func (s *Session) Inventory() *Inventory {
	return s.inv
}

// State returns the controller state.
func (s *Session) State() State {
	return s.state
}

// Run loops over the menu until the session terminates. A stability
// collapse is caught here, reported with a banner, and ends the session
// with OutcomeCollapse and a nil error. Any other error is returned.
func (s *Session) Run(ctx context.Context) (Result, error) {
	fmt.Fprintln(s.out, greeting)

	for s.state == StateRunning {
		if err := ctx.Err(); err != nil {
			s.terminate(OutcomeCanceled)
			return s.result, err
		}

		err := s.step(ctx)
		if err == nil {
			continue
		}

		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.log.Info("session interrupted")
			s.terminate(OutcomeCanceled)
			return s.result, err
		case errors.Is(err, errEndOfInput):
			s.log.Info("input closed, ending session")
			s.terminate(OutcomeEOF)
		case errors.Is(err, types.ErrStabilityCollapse):
			id, _ := types.CollapsedEntity(err)
			s.printCollapse(err)
			s.result.CollapsedID = id
			s.terminate(OutcomeCollapse)
		default:
			s.terminate(OutcomeError)
			return s.result, err
		}
	}

	return s.result, nil
}

// step prints the menu, reads one choice, and performs it.
func (s *Session) step(ctx context.Context) error {
	fmt.Fprint(s.out, menu)
	choice, err := s.readLine(ctx, promptChoice)
	if err != nil {
		return err
	}

	switch choice {
	case choiceAdd:
		return s.add()
	case choiceList:
		s.list()
		return nil
	case choiceAnalyze:
		return s.analyze(ctx)
	case choiceCooldown:
		return s.cooldown(ctx)
	case choiceExit:
		fmt.Fprintln(s.out, msgExit)
		s.record(journal.Event{Action: journal.ActionExit, Outcome: journal.OutcomeOK})
		s.terminate(OutcomeExit)
		return nil
	default:
		fmt.Fprintln(s.out, msgInvalid)
		s.record(journal.Event{Action: journal.ActionInvalid, Outcome: journal.OutcomeOK})
		return nil
	}
}

// readLine prints prompt and returns the next trimmed input line. Lines
// of any length are accepted. It returns ctx.Err() if ctx is done before a
// line arrives.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if s.lines == nil {
		s.lines = make(chan inputLine)
		go s.readLines()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok || errors.Is(l.err, io.EOF) {
			return "", errEndOfInput
		}
		if l.err != nil {
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return strings.TrimSpace(l.text), nil
	}
}

// readLines feeds s.lines until the input ends. A final line without a
// newline is delivered before the terminating error.
func (s *Session) readLines() {
	defer close(s.lines)
	for {
		text, err := s.in.ReadString('\n')
		if text != "" || err == nil {
			s.lines <- inputLine{text: text}
		}
		if err != nil {
			s.lines <- inputLine{err: err}
			return
		}
	}
}

func (s *Session) add() error {
	kind := PickKind(s.src)
	id := s.ids.NextID()

	e, err := types.NewEntity(id, kind)
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	s.inv.Add(e)

	fmt.Fprintf(s.out, "%s added to the vault.\n", id)
	s.record(journal.Event{
		Action:   journal.ActionAdd,
		EntityID: id,
		Kind:     kind.String(),
		Before:   e.Stability(),
		After:    e.Stability(),
		Outcome:  journal.OutcomeOK,
	})
	return nil
}

func (s *Session) list() {
	fmt.Fprintln(s.out, msgListHeader)
	if s.inv.Len() == 0 {
		fmt.Fprintln(s.out, msgEmpty)
	}
	for _, e := range s.inv.All() {
		fmt.Fprintln(s.out, e.Describe())
	}
	s.record(journal.Event{Action: journal.ActionList, Outcome: journal.OutcomeOK})
}

func (s *Session) analyze(ctx context.Context) error {
	id, err := s.readLine(ctx, promptAnalyze)
	if err != nil {
		return err
	}

	e, ok := s.inv.Find(id)
	if !ok {
		fmt.Fprintln(s.out, msgNotFound)
		s.record(journal.Event{Action: journal.ActionAnalyze, EntityID: id, Outcome: journal.OutcomeNotFound})
		return nil
	}

	before := e.Stability()
	msg, err := e.Analyze()
	if err != nil {
		s.recordCollapse(journal.ActionAnalyze, e, before, err)
		return err
	}

	fmt.Fprintln(s.out, msg)
	fmt.Fprintf(s.out, "Current stability: %%%.2f\n", e.Stability())
	s.record(journal.Event{
		Action:   journal.ActionAnalyze,
		EntityID: e.ID,
		Kind:     e.Kind.String(),
		Before:   before,
		After:    e.Stability(),
		Outcome:  journal.OutcomeOK,
	})
	return nil
}

func (s *Session) cooldown(ctx context.Context) error {
	id, err := s.readLine(ctx, promptCooldown)
	if err != nil {
		return err
	}

	e, ok := s.inv.Find(id)
	if !ok {
		fmt.Fprintln(s.out, msgNotFound)
		s.record(journal.Event{Action: journal.ActionCooldown, EntityID: id, Outcome: journal.OutcomeNotFound})
		return nil
	}

	c, ok := e.Cooler()
	if !ok {
		fmt.Fprintln(s.out, msgNotCoolable)
		s.record(journal.Event{
			Action:   journal.ActionCooldown,
			EntityID: e.ID,
			Kind:     e.Kind.String(),
			Before:   e.Stability(),
			After:    e.Stability(),
			Outcome:  journal.OutcomeNotCoolable,
		})
		return nil
	}

	before := e.Stability()
	msg, err := c.Cooldown()
	if err != nil {
		s.recordCollapse(journal.ActionCooldown, e, before, err)
		return err
	}

	fmt.Fprintln(s.out, msg)
	s.record(journal.Event{
		Action:   journal.ActionCooldown,
		EntityID: e.ID,
		Kind:     e.Kind.String(),
		Before:   before,
		After:    e.Stability(),
		Outcome:  journal.OutcomeOK,
	})
	return nil
}

func (s *Session) printCollapse(err error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, bannerRule)
	fmt.Fprintln(s.out, "SYSTEM COLLAPSE! EVACUATION STARTED...")
	fmt.Fprintf(s.out, "REASON: %s\n", err)
	fmt.Fprintln(s.out, bannerRule)
}

func (s *Session) terminate(outcome Outcome) {
	s.state = StateTerminated
	s.result.Outcome = outcome
	s.result.Objects = s.inv.Len()
	s.log.Info(fmt.Sprintf("session terminated: %s", outcome))
}

// record journals ev. Journal failures are logged and never end a session.
func (s *Session) record(ev journal.Event) {
	s.log.Event(ev.Action, ev.EntityID, fmt.Sprintf("%s %.2f -> %.2f", ev.Outcome, ev.Before, ev.After))
	if s.journal == nil {
		return
	}
	if _, err := s.journal.Record(ev); err != nil {
		s.log.Warn(fmt.Sprintf("journal: %v", err))
	}
}

func (s *Session) recordCollapse(action string, e *types.Entity, before float64, err error) {
	after := before
	var collapse *types.StabilityCollapseError
	if errors.As(err, &collapse) {
		after = collapse.Value
	}
	s.log.Error(err.Error())
	s.record(journal.Event{
		Action:   action,
		EntityID: e.ID,
		Kind:     e.Kind.String(),
		Before:   before,
		After:    after,
		Outcome:  journal.OutcomeCollapse,
	})
}
