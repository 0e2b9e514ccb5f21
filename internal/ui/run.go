package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"jsgreen/internal/driver"
	"jsgreen/internal/source"
)

type buildOutcome struct {
	fs      *source.FileSet
	results []*driver.BuildResult
	err     error
}

// RunBuildDir runs driver.BuildDir under the progress UI rendered to out.
// opts.Progress is replaced for the duration of the build.
func RunBuildDir(ctx context.Context, out io.Writer, title, dir string, opts driver.Options) (*source.FileSet, []*driver.BuildResult, error) {
	files, err := driver.ListFixtures(dir)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Progress, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(p driver.Progress) { events <- p }
		fs, results, err := driver.BuildDir(ctx, dir, optsCopy)
		outcomeCh <- buildOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// после выхода модели (ctrl+c или ошибка) канал дочитываем сами
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
