package main

import (
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/linked-collections/shell"
	"github.com/tuannh982/linked-collections/utils/collections"
)

// main starts an interactive console over a LinkedQueue and a LinkedSet of
// strings. Type "help" for the command list, quit with <ctrl>D.
func main() {
	level := flag.String("log-level", "info", "log level [trace|debug|info|warn|error]")
	initf := flag.String("init", "", "script of console commands to run first")
	prompt := flag.String("prompt", "lc> ", "console prompt")
	flag.Parse()

	logger := log.WithFields(log.Fields{"app": "linked-collections"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Logger.SetLevel(lvl)
	collections.SetLogger(logger.WithField("pkg", "collections"))

	initDisplay()
	sh := shell.New(logger.WithField("pkg", "shell"))
	if *initf != "" {
		loadInitFile(sh, logger, *initf)
	}

	repl, err := readline.New(*prompt)
	if err != nil {
		logger.Error(err)
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Info.Println("linked-collections console, quit with <ctrl>D")
	sh.Run(repl)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadInitFile(sh *shell.Shell, logger *log.Entry, filename string) {
	f, err := os.Open(filename)
	if err != nil {
		logger.Errorf("unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	failed, err := sh.LoadScript(f)
	if err != nil {
		logger.Errorf("error while reading init file: %v", err)
	}
	if failed > 0 {
		logger.WithField("failed", failed).Warn("init file had failing lines")
	}
}
