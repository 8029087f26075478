package manager

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	domain "github.com/oshokin/report-card/internal/domain/gradebook"
	"github.com/oshokin/report-card/internal/logger"
)

// shellMenu is the interactive menu shown before every prompt.
const shellMenu = `
--- Student Report Card Manager ---
1) Add student
2) Update scores
3) View report
4) Delete student
5) List all students
6) Save now
7) Exit
`

// RunShell starts the interactive menu loop on stdin/stdout.
func RunShell(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "report-card-shell")

	ctx, svc, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	return runShell(ctx, svc, os.Stdin, opts.output())
}

// shell drives one interactive session over the provided reader/writer.
type shell struct {
	svc     *Service
	scanner *bufio.Scanner
	out     io.Writer
}

// runShell loops over menu choices until exit, EOF, or context cancellation.
// Every error is printed and the loop continues; only a final save failure
// is returned to the caller.
func runShell(ctx context.Context, svc *Service, in io.Reader, out io.Writer) error {
	s := &shell{
		svc:     svc,
		scanner: bufio.NewScanner(in),
		out:     out,
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "Interrupted. Saving before exit...")

			return svc.Save(ctx)
		default:
		}

		fmt.Fprint(out, shellMenu)

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			// EOF on stdin ends the session like an explicit exit.
			fmt.Fprintln(out, "Saving and exiting...")

			return svc.Save(ctx)
		}

		switch choice {
		case "1":
			s.addStudent(ctx)
		case "2":
			s.updateScore(ctx)
		case "3":
			s.viewReport(ctx)
		case "4":
			s.deleteStudent(ctx)
		case "5":
			writeStudentList(ctx, out, svc)
		case "6":
			if err := svc.Save(ctx); err != nil {
				s.fail(err)
			} else {
				fmt.Fprintln(out, "Data saved.")
			}
		case "7":
			fmt.Fprintln(out, "Saving and exiting...")

			return svc.Save(ctx)
		default:
			fmt.Fprintln(out, "Invalid choice. Enter 1-7.")
		}
	}
}

// prompt prints the message and reads one trimmed input line.
// The second return value is false on EOF.
func (s *shell) prompt(message string) (string, bool) {
	fmt.Fprint(s.out, message)

	if !s.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.scanner.Text()), true
}

// fail prints an error in the console format the menu uses.
func (s *shell) fail(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

// addStudent registers a new student and offers to enter initial scores.
func (s *shell) addStudent(ctx context.Context) {
	name, ok := s.prompt("Student name: ")
	if !ok {
		return
	}

	if err := s.svc.AddStudent(ctx, name); err != nil {
		s.fail(err)

		return
	}

	fmt.Fprintf(s.out, "Added %q\n", name)

	for {
		subject, ok := s.prompt("Enter subject (or 'done'): ")
		if !ok || subject == "" || strings.EqualFold(subject, "done") {
			return
		}

		raw, ok := s.prompt(fmt.Sprintf("Marks for %s: ", subject))
		if !ok {
			return
		}

		score, err := domain.ParseScore(raw)
		if err != nil {
			s.fail(err)

			continue
		}

		if err = s.svc.SetScore(ctx, name, subject, score); err != nil {
			s.fail(err)
		}
	}
}

// updateScore records one score for an existing student.
func (s *shell) updateScore(ctx context.Context) {
	name, ok := s.prompt("Student name: ")
	if !ok {
		return
	}

	subject, ok := s.prompt("Subject name: ")
	if !ok {
		return
	}

	raw, ok := s.prompt("Enter score: ")
	if !ok {
		return
	}

	score, err := domain.ParseScore(raw)
	if err != nil {
		s.fail(err)

		return
	}

	if err = s.svc.SetScore(ctx, name, subject, score); err != nil {
		s.fail(err)

		return
	}

	fmt.Fprintf(s.out, "%s - %s: %g\n", name, subject, score)
}

// viewReport prints one student's report card.
func (s *shell) viewReport(ctx context.Context) {
	name, ok := s.prompt("Student name: ")
	if !ok {
		return
	}

	report, err := s.svc.Report(ctx, name)
	if err != nil {
		s.fail(err)

		return
	}

	writeReport(s.out, report)
}

// deleteStudent removes one student record.
func (s *shell) deleteStudent(ctx context.Context) {
	name, ok := s.prompt("Student name to delete: ")
	if !ok {
		return
	}

	if err := s.svc.DeleteStudent(ctx, name); err != nil {
		s.fail(err)

		return
	}

	fmt.Fprintf(s.out, "Deleted %q\n", name)
}
