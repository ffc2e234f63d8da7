package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/takoeight0821/ec1/config"
	"github.com/takoeight0821/ec1/driver"
)

func runPrompt(c *cli, runner *driver.Runner, cfg *config.Config) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), os.ModePerm); err != nil {
			fmt.Fprintln(c.errOut, err)
		}
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(c.errOut, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(c.errOut, err)
		}
	}

	for {
		input, err := line.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		// Errors are already reported; the prompt keeps going.
		_ = c.evaluate(runner, cfg, input)
	}
}
