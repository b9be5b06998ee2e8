package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-folder-cleanup/config"
	"go-folder-cleanup/internal/infrastructure/safety"
)

const defaultIntervalSeconds = 3600

// FolderValidator gates the folder answer. Implemented by
// internal/infrastructure/safety.
type FolderValidator interface {
	ValidateFolder(path string) error
}

// Setup gathers the cleanup tuple interactively when no settings file
// exists yet. Answers are validated before they are accepted and the
// user is re-prompted on failure.
type Setup struct {
	in        *bufio.Scanner
	out       io.Writer
	validator FolderValidator
}

func NewSetup(in io.Reader, out io.Writer, validator FolderValidator) *Setup {
	return &Setup{
		in:        bufio.NewScanner(in),
		out:       out,
		validator: validator,
	}
}

// Run prompts for folder, keep names and interval, returning accepted
// settings. It returns an error only if input ends before a valid
// configuration is assembled.
func (s *Setup) Run() (*config.Settings, error) {
	fmt.Fprintln(s.out, "\nFolder Cleanup Setup")

	folder, err := s.askFolder()
	if err != nil {
		return nil, err
	}

	keepList, err := s.askKeepList()
	if err != nil {
		return nil, err
	}

	interval, err := s.askInterval()
	if err != nil {
		return nil, err
	}

	return &config.Settings{
		Folder:   folder,
		KeepList: keepList,
		Interval: interval,
	}, nil
}

func (s *Setup) askFolder() (string, error) {
	for {
		line, err := s.readLine("1) Path to folder: ")
		if err != nil {
			return "", err
		}
		folder := strings.Trim(strings.TrimSpace(line), `"`)
		if err := s.validator.ValidateFolder(folder); err != nil {
			fmt.Fprintf(s.out, "Invalid path: %v. Try again.\n", err)
			continue
		}
		return folder, nil
	}
}

func (s *Setup) askKeepList() ([]string, error) {
	var keepList []string
	for {
		line, err := s.readLine("2) Item to KEEP (file or folder name, leave blank to stop): ")
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(line)
		if name == "" {
			return keepList, nil
		}
		if err := safety.ValidateName(name); err != nil {
			fmt.Fprintf(s.out, "Invalid name: %v. Try again.\n", err)
			continue
		}
		keepList = append(keepList, name)
	}
}

func (s *Setup) askInterval() (int, error) {
	for {
		line, err := s.readLine(fmt.Sprintf(
			"3) Delay between cleanups in seconds (default %d): ", defaultIntervalSeconds))
		if err != nil {
			return 0, err
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return defaultIntervalSeconds, nil
		}
		interval, err := strconv.Atoi(answer)
		if err != nil || interval <= 0 {
			fmt.Fprintln(s.out, "Invalid number. Try again.")
			continue
		}
		return interval, nil
	}
}

func (s *Setup) readLine(promptText string) (string, error) {
	fmt.Fprint(s.out, promptText)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
