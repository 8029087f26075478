package manager

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/oshokin/report-card/internal/config"
	domain "github.com/oshokin/report-card/internal/domain/gradebook"
	"github.com/oshokin/report-card/internal/logger"
	repository "github.com/oshokin/report-card/internal/repository/gradebook"
)

// Options controls where the report-card commands read settings and data from.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// DataFile overrides the gradebook JSON path from config/environment.
	DataFile string
	// LogLevel overrides the configured console log level.
	LogLevel string
	// Output receives human-readable command output, stdout when nil.
	Output io.Writer
}

// output returns the writer commands should print to.
func (o *Options) output() io.Writer {
	if o.Output != nil {
		return o.Output
	}

	return os.Stdout
}

// bootstrap loads settings, applies the log level, and builds a service
// bound to the resolved gradebook file.
func bootstrap(ctx context.Context, opts *Options) (context.Context, *Service, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ctx, nil, fmt.Errorf("load settings: %w", err)
	}

	// Command-line level wins over the configured one.
	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return ctx, nil, fmt.Errorf("unknown log level %q", levelName)
	}

	logger.SetLevel(level)

	dataFile := config.ResolveDataFile(opts.DataFile, cfg)
	ctx = logger.WithKV(ctx, "data_file", dataFile)

	svc, err := NewService(ctx, repository.NewFileRepository(dataFile))
	if err != nil {
		return ctx, nil, err
	}

	return ctx, svc, nil
}

// RunAdd registers a new student, optionally with initial subject scores.
func RunAdd(ctx context.Context, opts *Options, name string, scores map[string]float64) error {
	ctx = logger.WithName(ctx, "report-card-add")

	ctx, svc, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	if err = svc.AddStudent(ctx, name); err != nil {
		return err
	}

	for _, subject := range sortedSubjects(scores) {
		if err = svc.SetScore(ctx, name, subject, scores[subject]); err != nil {
			return err
		}
	}

	fmt.Fprintf(opts.output(), "Added %q\n", name)

	return nil
}

// RunSetScore records one subject score for an existing student.
func RunSetScore(ctx context.Context, opts *Options, name, subject string, score float64) error {
	ctx = logger.WithName(ctx, "report-card-score")

	ctx, svc, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	if err = svc.SetScore(ctx, name, subject, score); err != nil {
		return err
	}

	fmt.Fprintf(opts.output(), "%s - %s: %g\n", name, subject, score)

	return nil
}

// RunRemove deletes a student record.
func RunRemove(ctx context.Context, opts *Options, name string) error {
	ctx = logger.WithName(ctx, "report-card-remove")

	ctx, svc, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	if err = svc.DeleteStudent(ctx, name); err != nil {
		return err
	}

	fmt.Fprintf(opts.output(), "Deleted %q\n", name)

	return nil
}

// RunReport prints the report card for one student.
func RunReport(ctx context.Context, opts *Options, name string) error {
	ctx = logger.WithName(ctx, "report-card-report")

	ctx, svc, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	report, err := svc.Report(ctx, name)
	if err != nil {
		return err
	}

	writeReport(opts.output(), report)

	return nil
}

// RunList prints the table of all students with averages and grades.
func RunList(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "report-card-list")

	ctx, svc, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	writeStudentList(ctx, opts.output(), svc)

	return nil
}

// writeReport renders one report card in the console format.
func writeReport(w io.Writer, report *domain.Report) {
	fmt.Fprintln(w, "--- Report Card ---")
	fmt.Fprintf(w, "Name: %s\n", report.Name)

	if len(report.Subjects) == 0 {
		fmt.Fprintln(w, "  (no subjects entered)")
	} else {
		for _, subject := range sortedSubjects(report.Subjects) {
			fmt.Fprintf(w, "  %s: %g\n", subject, report.Subjects[subject])
		}
	}

	fmt.Fprintf(w, "Average: %.2f\n", report.Average)
	fmt.Fprintf(w, "Grade: %s\n", report.Grade)
	fmt.Fprintln(w, "-------------------")
}

// writeStudentList renders the aligned summary table of all students.
func writeStudentList(ctx context.Context, w io.Writer, svc *Service) {
	names := svc.Students(ctx)
	if len(names) == 0 {
		fmt.Fprintln(w, "No students yet.")

		return
	}

	fmt.Fprintf(w, "%-20s | %6s | %s\n", "Name", "Avg", "Grade")
	fmt.Fprintln(w, "-------------------------------------")

	for _, name := range names {
		report, err := svc.Report(ctx, name)
		if err != nil {
			continue
		}

		fmt.Fprintf(w, "%-20s | %6.2f | %s\n", name, report.Average, report.Grade)
	}
}

// sortedSubjects returns the map keys in alphabetical order for stable output.
func sortedSubjects(scores map[string]float64) []string {
	subjects := make([]string, 0, len(scores))
	for subject := range scores {
		subjects = append(subjects, subject)
	}

	sort.Strings(subjects)

	return subjects
}
