package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/zubairmh/llm-chess/internal/llmchess/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := llmchess(); err != nil {
		logrus.Fatal(err)
	}
}

func llmchess() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
