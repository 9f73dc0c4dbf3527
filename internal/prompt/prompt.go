package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gosite/internal/history"
	"github.com/alexiusacademia/gosite/internal/render"
	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/chzyer/readline"
)

// LineReader is the line source of a session. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// errQuit ends the session on end of input or Ctrl-C
var errQuit = errors.New("quit")

// errAbort returns from a flow to the main menu
var errAbort = errors.New("abort")

// NewReadline creates the terminal line reader used by the interactive command
func NewReadline() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Session is the menu-driven soil and wind calculator
type Session struct {
	in  LineReader
	out io.Writer

	soil *soil.Model
	rec  *history.Recorder
}

// NewSession creates a session. A nil recorder disables history.
func NewSession(in LineReader, out io.Writer, model *soil.Model, rec *history.Recorder) *Session {
	return &Session{in: in, out: out, soil: model, rec: rec}
}

// Run shows the main menu until the user exits or input ends
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.out, "──────────────── WELCOME TO SOIL ANALYSIS AND WIND LOAD CALCULATOR! ────────────────")
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Which calculation would you like to perform? Enter (1, 2, or 3)")
		fmt.Fprintln(s.out, "1: Soil Analysis")
		fmt.Fprintln(s.out, "2: Wind Load Calculation")
		fmt.Fprintln(s.out, "3: Exit")

		choice, err := s.ask("Enter the number of your choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.soilFlow()
		case "2":
			err = s.windFlow()
		case "3":
			fmt.Fprintln(s.out, "THANK YOU FOR USING SOIL ANALYSIS & WIND LOAD CALCULATOR. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, or 3.")
			continue
		}
		if err != nil && !errors.Is(err, errAbort) {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, errQuit) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

func (s *Session) ask(p string) (string, error) {
	s.in.SetPrompt(p)
	line, err := s.in.Readline()
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return "", errQuit
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// askValid re-prompts until accept returns nil, printing each rejection
func (s *Session) askValid(p string, accept func(string) error) error {
	for {
		line, err := s.ask(p)
		if err != nil {
			return err
		}
		if err := accept(line); err != nil {
			if errors.Is(err, errAbort) {
				return err
			}
			fmt.Fprintf(s.out, "Invalid input: %v\n", err)
			continue
		}
		return nil
	}
}

func (s *Session) askPositive(p, field string, dst *float64) error {
	return s.askValid(p, func(line string) error {
		v, err := tables.ParsePositive(field, line)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

func (s *Session) soilFlow() error {
	var (
		t          tables.SoilType
		q, d, wt   float64
		soilPrompt = fmt.Sprintf("Soil type (%s): ", joinSoilTypes())
	)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Please enter the soil analysis parameters:")
	if err := s.askValid(soilPrompt, func(line string) (err error) {
		t, err = tables.ParseSoilType(line)
		return err
	}); err != nil {
		return err
	}
	if err := s.askPositive("Soil bearing capacity (kN/m^2): ", "soil bearing capacity", &q); err != nil {
		return err
	}
	if err := s.askPositive("Depth of soil layer (meters): ", "depth of soil layer", &d); err != nil {
		return err
	}
	if err := s.askPositive("Water table depth (meters): ", "water table depth", &wt); err != nil {
		return err
	}

	sample, err := soil.NewSample(t, q, d, wt)
	if err != nil {
		return err
	}
	r, err := s.soil.Analyze(sample)
	if err != nil {
		return err
	}
	render.Soil(s.out, r)
	if err := s.rec.RecordSoil(r); err != nil {
		render.HistoryWarning(s.out, err)
	}
	return nil
}

func (s *Session) windFlow() error {
	for {
		if err := s.windOnce(); err != nil {
			return err
		}

		again := false
		if err := s.askValid("Do you want to calculate again? (yes/no): ", func(line string) error {
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "yes", "y":
				again = true
			case "no", "n":
			default:
				return fmt.Errorf("please answer yes or no")
			}
			return nil
		}); err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(s.out, "Thank you for using the Wind Load Calculator. Goodbye!")
			return nil
		}
	}
}

func (s *Session) windOnce() error {
	var (
		speed, area float64
		exposure    tables.Exposure
		shape       tables.Shape
		category    tables.Category
		subtype     string
	)

	fmt.Fprintln(s.out)
	if err := s.askPositive("Enter the wind speed (m/s): ", "wind speed", &speed); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Choices:")
	for _, e := range tables.Exposures() {
		fmt.Fprintf(s.out, "%s: %s\n", e.Exposure, e.Description)
	}
	if err := s.askValid("Enter the exposure category (A, B, C, D, E, F): ", func(line string) (err error) {
		exposure, err = tables.ParseExposure(line)
		return err
	}); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Choices: %s\n", joinShapes())
	if err := s.askValid("Enter the shape of the structure or type 'exit' to quit: ", func(line string) (err error) {
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return errAbort
		}
		shape, err = tables.ParseShape(line)
		return err
	}); err != nil {
		return err
	}

	if err := s.askPositive("Enter the area exposed to wind (m^2): ", "area", &area); err != nil {
		return err
	}

	names := make([]string, 0, len(tables.Categories()))
	for _, c := range tables.Categories() {
		names = append(names, string(c))
	}
	if err := s.askValid(fmt.Sprintf("Enter the building structure type (%s): ", strings.Join(names, ", ")), func(line string) (err error) {
		category, err = tables.ParseCategory(line)
		return err
	}); err != nil {
		return err
	}

	subs := tables.Subtypes(category)
	subNames := make([]string, len(subs))
	for i, st := range subs {
		subNames[i] = st.Name
	}
	if err := s.askValid(fmt.Sprintf("Enter the specific %s type (%s): ", category, strings.Join(subNames, ", ")), func(line string) (err error) {
		subtype, err = tables.ParseSubtype(category, line)
		return err
	}); err != nil {
		return err
	}

	sc, err := wind.NewScenario(speed, exposure, shape, category, subtype, area)
	if err != nil {
		return err
	}
	r, err := wind.Compute(sc)
	if err != nil {
		return err
	}
	render.Wind(s.out, r)
	if err := s.rec.RecordWind(r); err != nil {
		render.HistoryWarning(s.out, err)
	}
	return nil
}

func joinSoilTypes() string {
	types := tables.SoilTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func joinShapes() string {
	shapes := tables.Shapes()
	names := make([]string, len(shapes))
	for i, sh := range shapes {
		names[i] = string(sh.Shape)
	}
	return strings.Join(names, ", ")
}
