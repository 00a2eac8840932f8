package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

func (c *Console) promptFolder(initial string) (string, error) {
	if initial != "" {
		if folder, ok := c.acceptFolder(initial); ok {
			return folder, nil
		}
	}

	for {
		line, err := c.readLine("Enter the folder to search: ")
		if err != nil {
			return "", err
		}
		if folder, ok := c.acceptFolder(line); ok {
			return folder, nil
		}
	}
}

func (c *Console) acceptFolder(input string) (string, bool) {
	folder := cleanFolderInput(input)
	if err := c.validator.ValidateFolder(folder); err != nil {
		fmt.Fprintf(c.out, "Invalid folder: %s, please try again\n", err)
		return "", false
	}

	fmt.Fprintf(c.out, "Folder confirmed: %s\n", folder)
	return folder, true
}

func (c *Console) promptKeyword(initial string) (string, error) {
	if initial != "" {
		if keyword, ok := c.acceptKeyword(initial); ok {
			return keyword, nil
		}
	}

	for {
		line, err := c.readLine("Enter the keyword to search for (at least 3 characters): ")
		if err != nil {
			return "", err
		}
		if keyword, ok := c.acceptKeyword(line); ok {
			return keyword, nil
		}
	}
}

func (c *Console) acceptKeyword(input string) (string, bool) {
	keyword := strings.TrimSpace(input)
	if err := c.validator.ValidateKeyword(keyword); err != nil {
		fmt.Fprintf(c.out, "Invalid keyword: %s, please try again\n", err)
		return "", false
	}
	return keyword, true
}

// readLine returns the next line without its line ending. A final line that
// is not terminated by a newline is still returned.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		fmt.Fprintln(c.out)
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) waitForKeypress() {
	fmt.Fprint(c.out, "Press Enter to exit...")
	if _, err := c.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		c.logger.Debug("failed to read final keypress", "err", err.Error())
	}
}

// cleanFolderInput drops the quotes shells and file managers put around
// pasted paths.
func cleanFolderInput(input string) string {
	return strings.Trim(strings.TrimSpace(input), `"'`)
}
