// Package input reads documents from files, pipes and the terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/jsonist/internal/errors"
)

// ReadFile reads the document at filePath, rejecting empty paths,
// directories and empty files.
func ReadFile(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.IsDir() {
		return "", errors.NewInputError(
			fmt.Sprintf("'%s' is a directory", filePath),
			errors.ErrInvalidFilePath,
		)
	}
	if stat.Size() == 0 {
		return "", errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	return string(data), nil
}

// ReadAll reads piped input until EOF.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

// ReadInteractive prompts on prompt and reads pasted JSON from r until EOF
// (Ctrl+D, or Ctrl+Z on Windows).
func ReadInteractive(r io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprintln(prompt, "jsonist interactive mode")
	_, _ = fmt.Fprintln(prompt, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(r)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	_, _ = fmt.Fprintln(prompt)
	return jsonData, nil
}

// WriteFile replaces the contents of filePath, keeping its permissions when
// it already exists.
func WriteFile(filePath, content string) error {
	mode := os.FileMode(0o644)
	if stat, err := os.Stat(filePath); err == nil {
		mode = stat.Mode().Perm()
	}

	if err := os.WriteFile(filePath, []byte(content), mode); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", filePath), err)
	}
	return nil
}
